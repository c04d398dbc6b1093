package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"notary/internal/events"
	"notary/internal/notary/service"
	"notary/internal/notary/store"
	"notary/internal/platform/config"
	"notary/internal/platform/httpserver"
	"notary/internal/platform/logger"
	"notary/internal/platform/metrics"
	platformredis "notary/internal/platform/redis"
	"notary/internal/platform/token"
	httptransport "notary/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the service package.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	sink, closeSink, err := newSink(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSink()

	publisher := events.NewPublisher(log, cfg.EventBuffer)
	worker := events.NewWorker(log, sink, publisher.Inbox())

	m := metrics.New()
	svc := service.New(st, publisher, log, service.WithMetrics(m))

	tokens := token.NewService(cfg.JWTSigningKey, "notary")
	handler := httptransport.New(svc, log, m, tokens)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler.Router())

	srv := httpserver.New(cfg.Addr, mux)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := worker.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("notary server listening", "addr", cfg.Addr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info("notary server stopped")
	return nil
}

// newStore builds the configured state store and returns a cleanup func.
func newStore(ctx context.Context, cfg config.Server) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return store.NewMemoryStore(), func() {}, nil

	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		pg := store.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return pg, func() { _ = db.Close() }, nil

	case config.StoreRedis:
		client, err := platformredis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return store.NewRedisStore(client.Client), func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// newSink picks the event destination: Kafka when seeds are configured,
// otherwise an in-memory sink so local runs need no broker.
func newSink(ctx context.Context, cfg config.Server, log *slog.Logger) (events.Emitter, func(), error) {
	if len(cfg.KafkaSeeds) == 0 {
		log.Info("no kafka seeds configured, events stay in memory")
		return events.NewMemorySink(), func() {}, nil
	}
	sink, err := events.NewKafkaSink(ctx, cfg.KafkaSeeds, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka sink: %w", err)
	}
	return sink, sink.Close, nil
}
