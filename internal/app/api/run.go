package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	afterschoolserver "github.com/Apurer/afterschool-api/go"

	lessonmemory "github.com/Apurer/afterschool-api/internal/domains/lessons/adapters/memory"
	lessonobs "github.com/Apurer/afterschool-api/internal/domains/lessons/adapters/observability"
	lessonpostgres "github.com/Apurer/afterschool-api/internal/domains/lessons/adapters/persistence/postgres"
	lessonapp "github.com/Apurer/afterschool-api/internal/domains/lessons/application"
	lessonports "github.com/Apurer/afterschool-api/internal/domains/lessons/ports"

	storememory "github.com/Apurer/afterschool-api/internal/domains/store/adapters/memory"
	storeobs "github.com/Apurer/afterschool-api/internal/domains/store/adapters/observability"
	storepostgres "github.com/Apurer/afterschool-api/internal/domains/store/adapters/persistence/postgres"
	storeworkflows "github.com/Apurer/afterschool-api/internal/domains/store/adapters/workflows"
	storeapp "github.com/Apurer/afterschool-api/internal/domains/store/application"
	storeports "github.com/Apurer/afterschool-api/internal/domains/store/ports"

	"github.com/Apurer/afterschool-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/afterschool-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/afterschool-api/internal/platform/postgres"
)

// ServiceName identifies the API process in logs and traces.
const ServiceName = "afterschool-api"

// Repositories groups the stores backing both collections.
type Repositories struct {
	Lessons lessonports.Repository
	Orders  storeports.Repository
	Close   func()
}

// Run boots the After School Classes HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:   ServiceName,
		Environment:   cfg.Environment,
		LogLevel:      cfg.LogLevel,
		OTLPEndpoint:  cfg.OTLPEndpoint,
		OTLPInsecure:  cfg.OTLPInsecure,
		TraceExporter: cfg.TraceExporter,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos, err := BuildRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.Close()

	orders, closeOrders := OrderWorkflows(cfg, instruments)
	defer closeOrders()

	router, err := NewHandler(ctx, cfg, repos, instruments, orders)
	if err != nil {
		return err
	}

	addr := cfg.Addr()
	logger.Info("After School Classes API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("After School Classes API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// NewHandler builds the services over repos, seeds the catalog when enabled and
// returns the configured gin engine. A nil orders orchestrator places orders inline.
func NewHandler(ctx context.Context, cfg Config, repos Repositories, instruments *platformobservability.Instruments, orders storeports.OrderOrchestrator) (*gin.Engine, error) {
	logger := instruments.Logger

	lessonService := lessonobs.New(
		lessonapp.NewService(repos.Lessons),
		lessonobs.WithLogger(logger),
		lessonobs.WithTracer(instruments.Tracer("internal.lessons.application")),
		lessonobs.WithMeter(instruments.Meter("internal.lessons.application")),
	)
	if cfg.SeedLessons {
		inserted, err := lessonService.SeedIfEmpty(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed lessons: %w", err)
		}
		logger.Info("lesson catalog checked", slog.Int("inserted", inserted))
	}

	if orders == nil {
		storeService := storeobs.New(
			storeapp.NewService(repos.Orders),
			storeobs.WithLogger(logger),
			storeobs.WithTracer(instruments.Tracer("internal.store.application")),
			storeobs.WithMeter(instruments.Meter("internal.store.application")),
		)
		orders = storeworkflows.NewInlineOrderWorkflows(storeService)
	}

	return afterschoolserver.NewRouter(lessonService, orders, afterschoolserver.Options{
		ServiceName: ServiceName,
		UploadsDir:  cfg.UploadsDir,
		Logger:      logger,
	}), nil
}

// BuildRepositories returns in-memory stores when no DSN is configured and
// Postgres stores otherwise. A configured DSN that cannot be reached is an error.
func BuildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (Repositories, error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return Repositories{
			Lessons: lessonmemory.NewRepository(),
			Orders:  storememory.NewRepository(),
			Close:   func() {},
		}, nil
	}
	db, cleanup, err := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return Repositories{}, err
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		cleanup()
		return Repositories{}, fmt.Errorf("migrate schema: %w", err)
	}
	logger.Info("repositories configured with postgres")
	return Repositories{
		Lessons: lessonpostgres.NewRepository(db),
		Orders:  storepostgres.NewRepository(db),
		Close:   cleanup,
	}, nil
}

// errMemoryStore explains why orders stay inline when no shared store is configured.
var errMemoryStore = errors.New("orders are kept in process memory; the Temporal worker would persist them elsewhere")

// OrderWorkflows returns the Temporal orchestrator when it can be used, and nil
// otherwise so NewHandler places orders inline. Temporal needs a shared
// Postgres store since the worker persists orders in its own process.
func OrderWorkflows(cfg Config, instruments *platformobservability.Instruments) (storeports.OrderOrchestrator, func()) {
	logger := instruments.Logger
	if cfg.PostgresDSN == "" {
		logger.Warn("Temporal workflows skipped, placing orders inline", slog.String("reason", errMemoryStore.Error()))
		return nil, func() {}
	}
	temporalClient, err := connectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	return storeworkflows.NewTemporalOrderWorkflows(temporalClient), temporalClient.Close
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
