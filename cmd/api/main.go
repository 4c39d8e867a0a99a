package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/cache"
	"github.com/fgaudin/file-gateway-go/internal/config"
	"github.com/fgaudin/file-gateway-go/internal/handler/api"
	"github.com/fgaudin/file-gateway-go/internal/logger"
	cMiddleware "github.com/fgaudin/file-gateway-go/internal/middleware"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/storage"
	gatewaySvc "github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
	fguuid "github.com/fgaudin/file-gateway-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg, cfg.Bucket)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	uploadPreparerSvc := gatewaySvc.NewUploadPreparer(strg, cfg.Bucket, fguuid.NewUUID)
	r.Post("/files", api.PrepareUploadHandler(uploadPreparerSvc))

	downloadRedirectorSvc := gatewaySvc.NewDownloadRedirector(strg, ca, cfg.Bucket)
	r.With(cMiddleware.WithObjectKey()).
		Get("/files/{objectKey}", api.DownloadHandler(downloadRedirectorSvc))

	fileDeleterSvc := gatewaySvc.NewFileDeleter(strg, ca, cfg.Bucket)
	r.With(cMiddleware.WithObjectKey()).
		Delete("/files/{objectKey}", api.DeleteFileHandler(fileDeleterSvc))

	listenRouter(ctx, r, cfg)
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
