package port

import (
	"context"
	"time"
)

// FileInfo represents metadata about a stored object.
type FileInfo struct {
	Key          string
	SizeBytes    int64
	ContentType  string
	LastModified time.Time
}

// Storage defines object storage operations. The gateway never streams
// object bytes itself; clients talk to storage directly through presigned
// URLs.
type Storage interface {
	InitBucket(bucket string) error
	GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
	GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error)
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	ListFiles(ctx context.Context, bucket string) ([]FileInfo, error)
}
