package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/kezya-clinic/internal/audit"
	"github.com/BruksfildServices01/kezya-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/kezya-clinic/internal/db"
	"github.com/BruksfildServices01/kezya-clinic/internal/infra/gemini"
	"github.com/BruksfildServices01/kezya-clinic/internal/logger"
	"github.com/BruksfildServices01/kezya-clinic/internal/observability/metrics"
	"github.com/BruksfildServices01/kezya-clinic/internal/payments"
	"github.com/BruksfildServices01/kezya-clinic/internal/routes"
	"github.com/BruksfildServices01/kezya-clinic/internal/storage"
	"github.com/BruksfildServices01/kezya-clinic/internal/timezone"
	"github.com/BruksfildServices01/kezya-clinic/internal/usecase/message"
	"github.com/BruksfildServices01/kezya-clinic/internal/validators"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}
	if _, err := dbpkg.Seed(ctx, db, cfg.AdminEmail, cfg.AdminPassword, timezone.NowIn(cfg.PracticeTimezone)); err != nil {
		log.WithError(err).Fatal("failed to seed")
	}

	// --------------------------------------------------
	// Métricas
	// --------------------------------------------------
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	clinicMetrics := metrics.NewClinicMetrics(registry)

	// --------------------------------------------------
	// Redis (opcional)
	// --------------------------------------------------
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := cache.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unavailable, settings cache disabled")
			_ = cache.Close()
			cache = nil
		}
	}

	// --------------------------------------------------
	// Mensagens
	// --------------------------------------------------
	var composer message.Composer = message.NewTemplateComposer(nil, clinicMetrics)
	if cfg.UseGeneratedMessages() {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.WithError(err).Warn("gemini unavailable, using message templates")
		} else {
			defer client.Close()
			composer = message.NewGeneratedComposer(
				client,
				cfg.GeminiModel,
				log.WithComponent("messages"),
				clinicMetrics,
			)
		}
	}

	// --------------------------------------------------
	// Anexos e pagamentos
	// --------------------------------------------------
	var store *storage.Store
	if cfg.S3Bucket != "" {
		s3Client := storage.NewS3Client(storage.S3Options{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		store = storage.NewStore(s3Client, cfg.S3Bucket, log.WithComponent("storage"))
	}

	paymentLinks, err := payments.NewMercadoPago(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.WithError(err).Warn("mercadopago unavailable, payment links disabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log.WithComponent("audit"))

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Log:      log,
		Redis:    cache,
		Composer: composer,
		Store:    store,
		Payments: paymentLinks,
		Metrics:  clinicMetrics,
		Gatherer: registry,
		Audit:    dispatcher,
		Emails:   validators.NewEmailDomain(nil),
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}

	dispatcher.Close()
	if cache != nil {
		_ = cache.Close()
	}
}
