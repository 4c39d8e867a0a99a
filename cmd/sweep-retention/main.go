package main

import (
	"context"
	"log"

	"github.com/fgaudin/file-gateway-go/internal/config"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	dispatcher := initDispatcher(cfg)

	if err := dispatcher.EnqueueSweepRetention(context.Background()); err != nil {
		log.Fatalf("❌  Could not enqueue retention sweep: %v", err)
	}
	log.Println("✅  Retention sweep enqueued")
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Println("⚠️  Redis not configured — enqueueing is disabled, nothing will be swept")
		return task.NewNoopDispatcher()
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
