package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
)

type retentionSweeperSrv struct {
	strg      port.Storage
	bucket    string
	retention time.Duration
	now       func() time.Time
}

// compile-time check: *retentionSweeperSrv must satisfy port.RetentionSweeper
var _ port.RetentionSweeper = (*retentionSweeperSrv)(nil)

func NewRetentionSweeper(strg port.Storage, bucket string, retention time.Duration) port.RetentionSweeper {
	return &retentionSweeperSrv{strg: strg, bucket: bucket, retention: retention, now: time.Now}
}

func (s *retentionSweeperSrv) SweepRetention(ctx context.Context) (port.SweepRetentionOutput, error) {
	files, err := s.strg.ListFiles(ctx, s.bucket)
	if err != nil {
		return port.SweepRetentionOutput{}, fmt.Errorf("error listing bucket %q: %w", s.bucket, err)
	}

	cutoff := s.now().Add(-s.retention)
	out := port.SweepRetentionOutput{Scanned: len(files)}
	var failed int
	for _, f := range files {
		if !f.LastModified.Before(cutoff) {
			continue
		}
		if err := s.strg.RemoveFile(ctx, s.bucket, f.Key); err != nil {
			logger.Warnf(ctx, "⚠️  Could not remove expired object %q: %v", f.Key, err)
			failed++
			continue
		}
		out.Removed++
	}

	if failed > 0 {
		return out, fmt.Errorf("failed to remove %d expired object(s)", failed)
	}
	return out, nil
}
