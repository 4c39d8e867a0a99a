package cache

import (
	"context"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetDownloadURL(ctx context.Context, objectKey string) (string, time.Time, error) {
	return "", time.Time{}, nil // always cache miss
}

func (n *NoopCache) SetDownloadURL(ctx context.Context, objectKey, url string, expiresAt time.Time) {
}

func (n *NoopCache) DeleteDownloadURL(ctx context.Context, objectKey string) error { return nil }
