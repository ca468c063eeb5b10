package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MotorDesk/policy-extraction-backend/config"
	"github.com/MotorDesk/policy-extraction-backend/handlers"
	"github.com/MotorDesk/policy-extraction-backend/logger"
	"github.com/MotorDesk/policy-extraction-backend/router"
	"github.com/MotorDesk/policy-extraction-backend/services"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Redis backs trigger rate limiting; the pipeline itself runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisOptions := &redis.Options{
			Addr:         cfg.Redis.Address,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		}
		if cfg.Server.Environment == config.EnvProduction {
			redisOptions.TLSConfig = &tls.Config{
				ServerName: cfg.Redis.Address,
				MinVersion: tls.VersionTLS12,
			}
		}
		redisClient = redis.NewClient(redisOptions)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warnw("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Pipeline wiring
	providerTable, err := services.NewProviderTable()
	if err != nil {
		log.Fatalf("Failed to build provider table: %v", err)
	}

	metrics := services.NewPipelineMetrics()
	policyClient := services.NewPolicyAPIClient(&cfg.PolicyAPI)
	fetcher := services.NewStorageFetcher(&cfg.Storage, cfg.Extraction.DownloadTimeout)
	provider := services.NewNovoupProvider(&cfg.Extraction)
	extractionService := services.NewExtractionService(fetcher, provider, providerTable, metrics)

	drainService := services.NewDrainService(policyClient, policyClient, extractionService, metrics, cfg.Extraction.MaxFilesPerRun)
	if cfg.Email.Enabled {
		drainService.WithNotifier(services.NewEmailService(&cfg.Email))
	}

	lockRegistry := services.NewLockRegistry()
	rateLimitService := services.NewRateLimitService(redisClient, &cfg.RateLimit)
	healthService := services.NewHealthService(redisClient, lockRegistry, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		HealthHandler:     handlers.NewHealthHandler(healthService),
		ProcessingHandler: handlers.NewProcessingHandler(lockRegistry, drainService, rateLimitService),
		Logger:            log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	// In-flight drain goroutines finish their current file and release their
	// locks; only the HTTP listener is drained here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
}
