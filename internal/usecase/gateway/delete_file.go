package gateway

import (
	"context"
	"fmt"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
)

type fileDeleterSrv struct {
	strg   port.Storage
	ca     port.Cache
	bucket string
}

// compile-time check: *fileDeleterSrv must satisfy port.FileDeleter
var _ port.FileDeleter = (*fileDeleterSrv)(nil)

func NewFileDeleter(strg port.Storage, ca port.Cache, bucket string) port.FileDeleter {
	return &fileDeleterSrv{strg: strg, ca: ca, bucket: bucket}
}

func (s *fileDeleterSrv) DeleteFile(ctx context.Context, objectKey string) error {
	exists, err := s.strg.FileExists(ctx, s.bucket, objectKey)
	if err != nil {
		return fmt.Errorf("error checking if object %q exists: %w", objectKey, err)
	}
	if !exists {
		return ErrObjectNotFound
	}

	if err := s.strg.RemoveFile(ctx, s.bucket, objectKey); err != nil {
		return fmt.Errorf("error removing object %q: %w", objectKey, err)
	}

	// A stale cached URL would keep serving a deleted object until expiry.
	if err := s.ca.DeleteDownloadURL(ctx, objectKey); err != nil {
		logger.Warnf(ctx, "⚠️  Could not evict cached download URL for %q: %v", objectKey, err)
	}

	return nil
}
