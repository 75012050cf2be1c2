// Package main boots the knowledge graph service: it loads the profile
// config, wires the dependency graph with samber/do v2, serves HTTP, and
// drains everything in order on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/cache"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/clients/llmgateway"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/adapters/neo4j"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/app"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/config"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/health"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/logging"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired. The graph store
	// check always gates readiness; the gateway and cache checks are wired
	// only when their components are enabled.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	repo := do.MustInvoke[*neo4j.Repository](injector)
	registry.Register(repo)

	var redisCache *cache.Redis
	if cfg.Redis.Enabled {
		redisCache = do.MustInvoke[*cache.Redis](injector)
		registry.Register(redisCache)
	}
	if cfg.LLM.Enabled() {
		registry.Register(do.MustInvoke[*llmgateway.Client](injector))
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain in-flight requests, then reap the Start goroutine.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	// Release connection pools.
	if err := repo.Close(shutdownCtx); err != nil {
		logger.Error("neo4j close error", slog.Any("error", err))
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders carries the tracer and meter lifecycles together so run()
// can flush both with one call. Disabled telemetry leaves every field nil.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Schema registry seeded with the built-in node models.
	do.Provide(injector, func(_ do.Injector) (*graph.Registry, error) {
		registry := graph.NewRegistry()
		for _, s := range graph.Builtin() {
			if err := registry.Register(s); err != nil {
				return nil, fmt.Errorf("registering model schemas: %w", err)
			}
		}
		return registry, nil
	})

	// Graph store.
	do.Provide(injector, func(i do.Injector) (*neo4j.Repository, error) {
		registry := do.MustInvoke[*graph.Registry](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return neo4j.New(&cfg.Neo4j, registry, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.GraphRepository, error) {
		return do.MustInvoke[*neo4j.Repository](i), nil
	})

	// Outbound transport and LLM gateway. Both are lazy: they are only
	// instantiated when the gateway is configured.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "llm-gateway", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*llmgateway.Client, error) {
		transport := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return llmgateway.New(&cfg.LLM, transport, metrics, logger), nil
	})

	// Extraction cache, lazy for the same reason.
	do.Provide(injector, func(_ do.Injector) (*cache.Redis, error) {
		return cache.NewRedis(&cfg.Redis, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.PersonService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		return app.NewPersonService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrganizationService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		return app.NewOrganizationService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LocationService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		return app.NewLocationService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		return app.NewProjectService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TagService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		return app.NewTagService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RelationshipService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		return app.NewRelationshipService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SearchService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		registry := do.MustInvoke[*graph.Registry](i)
		return app.NewSearchService(repo, registry, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DiscoveryService, error) {
		registry := do.MustInvoke[*graph.Registry](i)
		return app.NewDiscoveryService(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LLMService, error) {
		repo := do.MustInvoke[ports.GraphRepository](i)
		registry := do.MustInvoke[*graph.Registry](i)

		var chat ports.ChatClient
		if cfg.LLM.Enabled() {
			chat = do.MustInvoke[*llmgateway.Client](i)
		}
		var extractionCache ports.ExtractionCache
		if cfg.Redis.Enabled {
			extractionCache = do.MustInvoke[*cache.Redis](i)
		}
		return app.NewLLMGraphService(chat, repo, registry, extractionCache, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.NodeHandler, error) {
		return handlers.NewNodeHandler(
			do.MustInvoke[ports.PersonService](i),
			do.MustInvoke[ports.OrganizationService](i),
			do.MustInvoke[ports.LocationService](i),
			do.MustInvoke[ports.ProjectService](i),
			do.MustInvoke[ports.TagService](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RelationshipHandler, error) {
		svc := do.MustInvoke[ports.RelationshipService](i)
		return handlers.NewRelationshipHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.SearchHandler, error) {
		svc := do.MustInvoke[ports.SearchService](i)
		return handlers.NewSearchHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ModelHandler, error) {
		svc := do.MustInvoke[ports.DiscoveryService](i)
		return handlers.NewModelHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.LLMHandler, error) {
		svc := do.MustInvoke[ports.LLMService](i)
		return handlers.NewLLMHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.NodeHandler](i),
			do.MustInvoke[*handlers.RelationshipHandler](i),
			do.MustInvoke[*handlers.SearchHandler](i),
			do.MustInvoke[*handlers.ModelHandler](i),
			do.MustInvoke[*handlers.LLMHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
