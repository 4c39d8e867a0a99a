package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
)

// downloadURLTTL is how long an issued download URL stays valid.
const downloadURLTTL = 1 * time.Hour

type downloadRedirectorSrv struct {
	strg   port.Storage
	ca     port.Cache
	bucket string
}

// compile-time check: *downloadRedirectorSrv must satisfy port.DownloadRedirector
var _ port.DownloadRedirector = (*downloadRedirectorSrv)(nil)

func NewDownloadRedirector(strg port.Storage, ca port.Cache, bucket string) port.DownloadRedirector {
	return &downloadRedirectorSrv{strg: strg, ca: ca, bucket: bucket}
}

func (s *downloadRedirectorSrv) RedirectDownload(ctx context.Context, objectKey string) (port.RedirectDownloadOutput, error) {
	if url, expiresAt, err := s.ca.GetDownloadURL(ctx, objectKey); err != nil {
		logger.Warnf(ctx, "⚠️  Cache lookup failed for %q, falling through to storage: %v", objectKey, err)
	} else if url != "" {
		// report the time the cached URL actually has left, not the full
		// signing window
		return port.RedirectDownloadOutput{
			Location:  url,
			ExpiresIn: int(time.Until(expiresAt).Seconds()),
		}, nil
	}

	exists, err := s.strg.FileExists(ctx, s.bucket, objectKey)
	if err != nil {
		return port.RedirectDownloadOutput{}, fmt.Errorf("error checking if object %q exists: %w", objectKey, err)
	}
	if !exists {
		return port.RedirectDownloadOutput{}, ErrObjectNotFound
	}

	url, err := s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, objectKey, downloadURLTTL)
	if err != nil {
		return port.RedirectDownloadOutput{}, err
	}

	s.ca.SetDownloadURL(ctx, objectKey, url, time.Now().Add(downloadURLTTL))

	return port.RedirectDownloadOutput{
		Location:  url,
		ExpiresIn: int(downloadURLTTL.Seconds()),
	}, nil
}
