package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/config"
	workerHandler "github.com/fgaudin/file-gateway-go/internal/handler/worker"
	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/storage"
	"github.com/fgaudin/file-gateway-go/internal/task"
	gatewaySvc "github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	strg := initStorage(cfg)
	initBucket(strg, cfg.Bucket)

	sweepSvc := gatewaySvc.NewRetentionSweeper(strg, cfg.Bucket, cfg.RetentionPeriod)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeSweepRetention, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseSweepRetentionPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.SweepRetentionHandler(ctx, p, sweepSvc)
	})

	runWorker(ctx, mux, cfg)
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
