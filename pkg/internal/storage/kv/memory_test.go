package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage/kv"
)

func newMemoryKV(t *testing.T) kv.KVStore {
	t.Helper()

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })

	return store
}

// TestMemoryKVBasic Set/Get/Exists/Delete 基本语义.
func TestMemoryKVBasic(t *testing.T) {
	ctx := context.Background()
	store := newMemoryKV(t)

	if err := store.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if string(got) != "v1" {
		t.Fatalf("expected v1, got %q", got)
	}

	exists, err := store.Exists(ctx, "k1")
	if err != nil || !exists {
		t.Fatalf("expected key to exist, exists=%v err=%v", exists, err)
	}

	if err := store.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Get(ctx, "k1"); err == nil {
		t.Fatal("expected error for deleted key")
	}

	exists, err = store.Exists(ctx, "k1")
	if err != nil || exists {
		t.Fatalf("deleted key must not exist, exists=%v err=%v", exists, err)
	}
}

// TestMemoryKVTTL 过期键如同不存在.
func TestMemoryKVTTL(t *testing.T) {
	ctx := context.Background()
	store := newMemoryKV(t)

	if err := store.Set(ctx, "short", []byte("x"), 30*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, err := store.Get(ctx, "short"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	time.Sleep(60 * time.Millisecond)

	if _, err := store.Get(ctx, "short"); err == nil {
		t.Fatal("expected expired key to be gone")
	}
}

// TestMemoryKVIncr 计数器递增，过期后重新计数.
func TestMemoryKVIncr(t *testing.T) {
	ctx := context.Background()
	store := newMemoryKV(t)

	for want := int64(1); want <= 3; want++ {
		got, err := store.Incr(ctx, "counter", time.Minute)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}

		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	// 短 TTL 的计数器过期后从 1 重新开始
	if _, err := store.Incr(ctx, "burst", 30*time.Millisecond); err != nil {
		t.Fatalf("incr burst: %v", err)
	}

	time.Sleep(60 * time.Millisecond)

	got, err := store.Incr(ctx, "burst", 30*time.Millisecond)
	if err != nil {
		t.Fatalf("incr after expiry: %v", err)
	}

	if got != 1 {
		t.Fatalf("expected counter reset to 1, got %d", got)
	}

	// 非数字值递增报错
	if err := store.Set(ctx, "text", []byte("abc"), 0); err != nil {
		t.Fatalf("set text: %v", err)
	}

	if _, err := store.Incr(ctx, "text", 0); err == nil {
		t.Fatal("expected error incrementing non-numeric value")
	}
}

// TestMemoryKVGetReturnsCopy Get 返回副本，修改不影响存储内容.
func TestMemoryKVGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newMemoryKV(t)

	if err := store.Set(ctx, "k", []byte("orig"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	first, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	first[0] = 'X'

	second, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}

	if string(second) != "orig" {
		t.Fatalf("stored value mutated: %q", second)
	}
}
