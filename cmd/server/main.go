package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jansetu/internal/appeals"
	"jansetu/internal/application"
	applicationhandler "jansetu/internal/application/handler"
	applicationmetrics "jansetu/internal/application/metrics"
	"jansetu/internal/audit"
	audithandler "jansetu/internal/audit/handler"
	"jansetu/internal/document"
	documenthandler "jansetu/internal/document/handler"
	"jansetu/internal/eligibility"
	eligibilityhandler "jansetu/internal/eligibility/handler"
	eligibilitymetrics "jansetu/internal/eligibility/metrics"
	httpapi "jansetu/internal/http"
	"jansetu/internal/knowledge"
	"jansetu/internal/platform/config"
	"jansetu/internal/platform/httpserver"
	"jansetu/internal/platform/logger"
	"jansetu/internal/platform/metrics"
	platformredis "jansetu/internal/platform/redis"
	"jansetu/internal/profile"
	profilehandler "jansetu/internal/profile/handler"
	"jansetu/internal/risk"
	riskhandler "jansetu/internal/risk/handler"
	riskmetrics "jansetu/internal/risk/metrics"
)

// main wires stores, services and handlers, then runs the HTTP server until
// SIGINT or SIGTERM. Business logic lives in the internal module packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "jansetu:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := knowledge.Catalog()
	if err := knowledge.ValidateCatalog(catalog); err != nil {
		return fmt.Errorf("scheme catalog invalid: %w", err)
	}
	graph := knowledge.Build(catalog)
	log.Info("scheme knowledge graph built",
		"schemes", graph.Stats().Schemes,
	)

	// Stores fall back to in-memory when no external URL is configured.
	var profileStore profile.Store = profile.NewInMemoryStore()
	var auditStore audit.Store = audit.NewInMemoryStore()
	if cfg.Postgres.URL != "" {
		poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.URL)
		if err != nil {
			return fmt.Errorf("parse postgres URL: %w", err)
		}
		poolCfg.MaxConns = cfg.Postgres.MaxConns
		poolCfg.MaxConnLifetime = cfg.Postgres.ConnLifetime
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		pg := profile.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure profile schema: %w", err)
		}
		profileStore = pg

		auditPg, err := audit.NewPostgresStore(cfg.Postgres.URL)
		if err != nil {
			return fmt.Errorf("connect audit store: %w", err)
		}
		defer auditPg.Close()
		if err := auditPg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure audit schema: %w", err)
		}
		auditStore = auditPg
		log.Info("postgres stores ready")
	}

	var applicationStore application.Store = application.NewInMemoryStore()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		applicationStore = application.NewRedisStore(redisClient.Client)
		log.Info("redis application store ready")
	}

	auditWorker := audit.NewWorker(auditStore, nil, log)
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := audit.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer publisher.Close()
		auditWorker = audit.NewWorker(auditStore, publisher, log)
		log.Info("kafka audit publisher ready", "topic", cfg.Kafka.AuditTopic)
	}
	auditWorker.Start(context.Background())
	defer auditWorker.Close()

	appMetrics := metrics.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	eligibilityService := eligibility.NewService(graph, log, eligibilitymetrics.New())
	riskService := risk.NewService(graph, risk.UniformNoise(rng), log, riskmetrics.New())
	profileService := profile.NewService(profileStore, log)
	documentService := document.NewService(nil, log)
	appealsService := appeals.NewService(log)
	applicationService := application.NewService(
		graph, profileService, appealsService, applicationStore, nil, log, applicationmetrics.New())

	router := httpapi.New(httpapi.Config{
		Logger:  log,
		Metrics: appMetrics,
		Audit:   auditWorker,
		Handlers: []httpapi.Registrar{
			eligibilityhandler.New(eligibilityService, graph, log),
			riskhandler.New(riskService, log),
			profilehandler.New(profileService, log),
			documenthandler.New(documentService, log),
			applicationhandler.New(applicationService, log),
			audithandler.New(auditStore, log),
		},
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting jansetu", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
