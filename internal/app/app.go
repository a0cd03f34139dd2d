// Package app wires configuration, storage, change tracking and the HTTP
// transport into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/changetrail/internal/adapter/memory"
	"github.com/heartmarshall/changetrail/internal/adapter/postgres"
	changelogrepo "github.com/heartmarshall/changetrail/internal/adapter/postgres/changelog"
	topicrepo "github.com/heartmarshall/changetrail/internal/adapter/postgres/topic"
	"github.com/heartmarshall/changetrail/internal/auth"
	"github.com/heartmarshall/changetrail/internal/changelog"
	"github.com/heartmarshall/changetrail/internal/config"
	"github.com/heartmarshall/changetrail/internal/domain"
	topicsvc "github.com/heartmarshall/changetrail/internal/service/topic"
	"github.com/heartmarshall/changetrail/internal/transport/middleware"
	"github.com/heartmarshall/changetrail/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL and serves HTTP until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("changelog_store", cfg.ChangeLog.Store),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, cleanup, err := NewHTTPHandler(cfg, logger, pool, reg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// NewHTTPHandler builds the full HTTP stack on top of pool. Metrics are
// registered in reg and served from it. cleanup stops background workers.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg *prometheus.Registry) (http.Handler, func(), error) {
	// Change tracking.
	store, err := changeLogStore(cfg.ChangeLog, pool)
	if err != nil {
		return nil, nil, err
	}
	specs := changelog.NewRegistry()
	topicSpec, err := specs.Register(domain.TrackingSpec{
		Kind:      domain.TargetTypeTopic,
		Fields:    domain.TopicTrackedFields(),
		Relations: domain.TopicTrackedRelations(),
		Store:     store,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("register topic tracking: %w", err)
	}
	recorder := changelog.NewRecorder(logger,
		changelog.WithMetrics(changelog.NewMetrics(reg)),
		changelog.WithRecordTimeout(cfg.ChangeLog.RecordTimeout),
	)
	history := changelog.NewHistory(specs, cfg.ChangeLog.HistoryLimit)

	var views *changelog.ViewFilter
	if cfg.ChangeLog.StaffOnlyHistory {
		views = changelog.NewStaffViewFilter(history, logger)
	} else {
		views = changelog.NewViewFilter(history, logger)
	}

	// Services.
	topics := topicsvc.NewService(logger, topicrepo.New(pool), postgres.NewTxManager(pool), topicSpec, recorder, history)

	// Transport.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		Topics:  rest.NewTopicHandler(topics, views, logger),
		History: rest.NewHistoryHandler(history, specs, logger),
		Health: rest.NewHealthHandler(Version, rest.HealthCheck{
			Name:   "database",
			Pinger: pool,
		}),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Auth:        middleware.Auth(jwtManager),
		CORS:        middleware.CORS(cfg.CORS),
		HTTPMetrics: middleware.NewHTTPMetrics(reg).Middleware(),
		WriteLimit:  limiter.Limit(cfg.Server.WriteRateLimit),
	})

	return router, limiter.Stop, nil
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

// changeLogStore selects the backend for change entries.
func changeLogStore(cfg config.ChangeLogConfig, db postgres.Querier) (domain.ChangeLogStore, error) {
	if cfg.UsesMemory() {
		return memory.NewChangeLogStore(), nil
	}
	repo, err := changelogrepo.New(db, cfg.Table)
	if err != nil {
		return nil, fmt.Errorf("change log store: %w", err)
	}
	return repo, nil
}
