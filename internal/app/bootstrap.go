package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/foodbot/config"
	cachemem "github.com/Gunvolt24/foodbot/internal/cache/memory"
	"github.com/Gunvolt24/foodbot/internal/kafka"
	"github.com/Gunvolt24/foodbot/internal/ports"
	"github.com/Gunvolt24/foodbot/internal/repo/postgres"
	sessionmem "github.com/Gunvolt24/foodbot/internal/session/memory"
	rest "github.com/Gunvolt24/foodbot/internal/transport/http"
	"github.com/Gunvolt24/foodbot/internal/usecase"
	"github.com/Gunvolt24/foodbot/pkg/logger"
	"github.com/Gunvolt24/foodbot/pkg/metrics"
	"github.com/Gunvolt24/foodbot/pkg/telemetry"
	"github.com/Gunvolt24/foodbot/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	StatusConsumer  ports.MessageConsumer // консьюмер статусов заказов
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// idleConsumer — заглушка на случай выключенного Kafka: ждёт отмены контекста.
type idleConsumer struct{}

func (idleConsumer) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (idleConsumer) Close() error { return nil }

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// webhookAccounts — учётка basic auth вебхука; nil, если логин не задан.
func webhookAccounts(cfg config.Webhook) gin.Accounts {
	if cfg.Username == "" {
		return nil
	}
	return gin.Accounts{cfg.Username: cfg.Password}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, postgres.PoolOptions{
		MaxConns:        cfg.Postgres.MaxConns,
		MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
		MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
		AppName:         cfg.Tracing.ServiceName,
	})
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}

	// Схема и сиды меню.
	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			closeLogger()
			return nil, func() {}, err
		}
		logg.Infof(ctx, "migrations applied")
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей прикладного слоя.
	statusCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	orderRepo := postgres.NewOrderRepository(pool)
	validator := validate.NewRequestValidator()
	orderService := usecase.NewOrderService(sessionmem.NewSessionStore(), orderRepo, statusCache, logg, validator)
	statusService := usecase.NewStatusService(orderRepo, statusCache, logg, validator)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(orderService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName, webhookAccounts(cfg.Webhook))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Консьюмер статусов заказов (Kafka) — только при включённой конфигурации.
	var consumer ports.MessageConsumer = idleConsumer{}
	if cfg.Kafka.Enabled {
		statusConsumer, kErr := kafka.NewStatusConsumer(kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, statusService, logg)
		if kErr != nil {
			_ = shutdownTrace(context.Background())
			pool.Close()
			closeLogger()
			return nil, func() {}, kErr
		}
		consumer = statusConsumer
	} else {
		logg.Infof(ctx, "kafka status consumer disabled")
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		StatusConsumer:  consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "status consumer close error: %v", err)
		}

		pool.Close()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	go func() {
		a.Logger.Infof(ctx, "status consumer starting")
		if err := a.StatusConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка консьюмера
	if err := a.StatusConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "status consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
