package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	accesshandler "holocron/internal/access/handler"
	accessmetrics "holocron/internal/access/metrics"
	"holocron/internal/access/service"
	"holocron/internal/admin"
	"holocron/internal/platform/httpserver"
	"holocron/internal/platform/metrics"
	"holocron/internal/platform/redis"
	ratelimitmetrics "holocron/internal/ratelimit/metrics"
	ratelimitmw "holocron/internal/ratelimit/middleware"
	ratelimitmodels "holocron/internal/ratelimit/models"
	"holocron/internal/ratelimit/service/requestlimit"
	"holocron/internal/ratelimit/store/bucket"
	httptransport "holocron/internal/transport/http"
	"holocron/pkg/passwords"
	"holocron/pkg/platform/audit"
	auditkafka "holocron/pkg/platform/audit/kafka"
	"holocron/pkg/platform/audit/publisher"
)

const auditBuffer = 1024

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Long: `Serve migrates the schema, then serves the public API, the admin API,
/healthz and /metrics until SIGINT or SIGTERM.`,
		RunE: a.serve,
	}
}

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, a.cfg.Database, a.logger)
	if err != nil {
		return err
	}
	defer b.Close()
	if err := b.migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisClient, err := redis.New(ctx, a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	auditPublisher, closeAudit, err := a.newAuditPublisher(ctx)
	if err != nil {
		return err
	}
	// Drain buffered events before the sinks go away.
	defer closeAudit()

	httpMetrics := metrics.New()

	accessService := service.New(b.catalog, b.favorites, b.tx,
		service.WithLogger(a.logger),
		service.WithMetrics(accessmetrics.New()),
		service.WithAuditPublisher(auditPublisher),
	)
	adminService := admin.NewService(b.catalog, passwords.Hasher{},
		admin.WithLogger(a.logger),
		admin.WithMetrics(httpMetrics),
		admin.WithAuditPublisher(auditPublisher),
	)

	rateLimit, err := a.newRateLimit(redisClient, auditPublisher)
	if err != nil {
		return err
	}

	health := map[string]httptransport.HealthChecker{"database": b}
	if redisClient != nil {
		health["redis"] = redisClient
	}

	router := httptransport.NewRouter(httptransport.Config{
		Logger:    a.logger,
		Metrics:   httpMetrics,
		RateLimit: rateLimit,
		Public: []httptransport.Registrar{
			accesshandler.New(accessService, a.logger, accesshandler.WithGroupedFavorites(a.cfg.Favorites.Grouped)),
		},
		Admin: []httptransport.Registrar{
			admin.NewHandler(adminService, a.cfg.Admin.Token, a.logger),
		},
		Health:      health,
		CORSOrigins: a.cfg.CORS.AllowedOrigins,
	})
	srv := httpserver.New(a.cfg.Server.Addr, router, a.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting holocron", "addr", a.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down", "timeout", a.cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// newAuditPublisher always logs events and additionally produces them to
// Kafka when brokers are configured.
func (a *app) newAuditPublisher(ctx context.Context) (*publisher.Publisher, func(), error) {
	sinks := audit.Fanout{audit.NewLogSink(a.logger)}
	var kafkaSink *auditkafka.Sink
	if a.cfg.Kafka.Enabled() {
		sink, err := auditkafka.Dial(ctx, a.cfg.Kafka.Brokers, a.cfg.Kafka.AuditTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("connect kafka: %w", err)
		}
		a.logger.Info("audit events go to kafka", "topic", a.cfg.Kafka.AuditTopic)
		kafkaSink = sink
		sinks = append(sinks, sink)
	}

	pub := publisher.NewPublisher(sinks, publisher.WithAsyncBuffer(auditBuffer), publisher.WithLogger(a.logger))
	closeFn := func() {
		pub.Close()
		if kafkaSink != nil {
			kafkaSink.Close()
		}
	}
	return pub, closeFn, nil
}

// newRateLimit returns nil when limiting is disabled. Redis backs the
// counters when configured, with an in-memory fallback while it is failing.
func (a *app) newRateLimit(redisClient *redis.Client, auditPublisher requestlimit.AuditPublisher) (func(http.Handler) http.Handler, error) {
	if !a.cfg.RateLimit.Enabled {
		return nil, nil
	}
	limit := ratelimitmodels.Limit{RequestsPerWindow: a.cfg.RateLimit.Requests, Window: a.cfg.RateLimit.Window}
	m := ratelimitmetrics.New()
	opts := []requestlimit.Option{
		requestlimit.WithLogger(a.logger),
		requestlimit.WithMetrics(m),
		requestlimit.WithAuditPublisher(auditPublisher),
	}

	memory, err := requestlimit.New(bucket.NewInMemoryBucketStore(), limit, opts...)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	if redisClient == nil {
		return ratelimitmw.New(memory, a.logger, ratelimitmw.WithMetrics(m)).RateLimit, nil
	}

	shared, err := requestlimit.New(bucket.NewRedisBucketStore(redisClient.Client), limit, opts...)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	a.logger.Info("rate limit counters in redis")
	return ratelimitmw.New(shared, a.logger,
		ratelimitmw.WithMetrics(m),
		ratelimitmw.WithFallback(memory),
	).RateLimit, nil
}
