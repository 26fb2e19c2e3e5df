package kv

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// memoryEntry 带过期时间的值.
type memoryEntry struct {
	data      []byte
	expiresAt time.Time // 零值表示永不过期
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryKV 进程内 KV 实现，惰性清理过期键.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]*memoryEntry
}

// NewMemoryKV 创建内存 KV 实例.
func NewMemoryKV(ctx context.Context, config any) (KVStore, error) {
	// 内存实现不需要特殊配置
	return &MemoryKV{data: make(map[string]*memoryEntry)}, nil
}

// load 取出未过期的条目，过期条目顺手删除. 调用方需持锁.
func (m *MemoryKV) load(key string, now time.Time) (*memoryEntry, bool) {
	entry, exists := m.data[key]
	if !exists {
		return nil, false
	}

	if entry.expired(now) {
		delete(m.data, key)
		return nil, false
	}

	return entry, true
}

// Get 获取键的值.
func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.load(key, time.Now())
	if !exists {
		return nil, fmt.Errorf("key not found: %s", key)
	}

	// 返回副本
	result := make([]byte, len(entry.data))
	copy(result, entry.data)

	return result, nil
}

// Set 设置键的值.
func (m *MemoryKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// 复制值
	data := make([]byte, len(value))
	copy(data, value)

	entry := &memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()

	return nil
}

// Incr 原子递增计数器并返回新值.
func (m *MemoryKV) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	var count int64

	entry, exists := m.load(key, now)
	if exists {
		parsed, err := strconv.ParseInt(string(entry.data), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric value for key: %s", key)
		}

		count = parsed + 1
		entry.data = []byte(strconv.FormatInt(count, 10))

		return count, nil
	}

	count = 1
	entry = &memoryEntry{data: []byte("1")}

	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.data[key] = entry

	return count, nil
}

// Delete 删除键.
func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}

// Exists 检查键是否存在.
func (m *MemoryKV) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.load(key, time.Now())

	return exists, nil
}

// Keys 获取所有键.
func (m *MemoryKV) Keys(ctx context.Context, pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	keys := make([]string, 0)

	for k, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, k)
			continue
		}

		if pattern == "" || k == pattern {
			keys = append(keys, k)
		}
	}

	return keys, nil
}

// Close 关闭存储（内存实现无需操作）.
func (m *MemoryKV) Close() error {
	return nil
}

func init() {
	RegisterKVFactory(KVTypeMemory, NewMemoryKV)
}
