package worker

import (
	"context"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/task"
)

func SweepRetentionHandler(ctx context.Context, p task.SweepRetentionPayload, svc port.RetentionSweeper) error {
	logger.Infof(ctx, "sweeping expired objects (requested at %s)...", p.RequestedAt)

	out, err := svc.SweepRetention(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Retention sweep failed: %v", err)
		return err
	}

	logger.Infof(ctx, "✅  Retention sweep done: %d object(s) scanned, %d removed", out.Scanned, out.Removed)
	return nil
}
