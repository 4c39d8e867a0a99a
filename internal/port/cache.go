package port

import (
	"context"
	"time"
)

// Cache stores presigned download URLs so repeated reads of the same object
// don't re-sign on every request.
type Cache interface {
	// GetDownloadURL returns the cached URL and its expiry for the key, or
	// "" and the zero time on a miss.
	GetDownloadURL(ctx context.Context, objectKey string) (string, time.Time, error)
	// SetDownloadURL caches a URL valid until expiresAt.
	SetDownloadURL(ctx context.Context, objectKey, url string, expiresAt time.Time)
	DeleteDownloadURL(ctx context.Context, objectKey string) error
}
