// Package app 提供应用程序的初始化、启动与优雅停机.
package app

import (
	contextPkg "context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/igorzgk/excel-delivery-sub000/pkg/api"
	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/jobs"
	"github.com/igorzgk/excel-delivery-sub000/pkg/internal/storage"
	"github.com/igorzgk/excel-delivery-sub000/pkg/log"
	"github.com/igorzgk/excel-delivery-sub000/pkg/metrics"
	"github.com/igorzgk/excel-delivery-sub000/pkg/middleware"
	"github.com/igorzgk/excel-delivery-sub000/pkg/scheduler"
	"github.com/igorzgk/excel-delivery-sub000/pkg/tracing"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()
	if !config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	if err := manager.DB.Migrate(); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.StorageMiddleware(manager),
		middleware.AuthMiddleware(config.Auth),
	)

	api.RegisterRoutes(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	// 审计落库消费者
	if err := jobs.StartAuditWriter(ctx, manager); err != nil {
		fmt.Printf("Error starting audit writer: %v\n", err)
		os.Exit(1)
	}

	// 定时任务
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error creating scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	sched.Start()

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// Run 启动 HTTP 服务并阻塞到收到退出信号，随后优雅停机.
func (a *App) Run() error {
	l := log.Logger()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:           a.Engine,
		ReadHeaderTimeout: a.config.Server.GetTimeoutDuration(),
	}

	errCh := make(chan error, 1)

	go func() {
		l.Info().Str("addr", srv.Addr).Msg("http server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		l.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := contextPkg.WithTimeout(contextPkg.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Msg("http server shutdown failed")
	}

	if err := a.sched.Shutdown(); err != nil {
		l.Error().Err(err).Msg("scheduler shutdown failed")
	}

	if err := tracing.ShutdownTracer(ctx); err != nil {
		l.Error().Err(err).Msg("tracer shutdown failed")
	}

	if err := a.manager.Close(); err != nil {
		l.Error().Err(err).Msg("storage close failed")
	}

	return nil
}
