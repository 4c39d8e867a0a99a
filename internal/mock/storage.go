package mock

import (
	"context"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	ListOut   []port.FileInfo
	ExistsOut bool

	// captured inputs
	Bucket      string
	ObjectKey   string
	TTL         time.Duration
	RemovedKeys []string

	// errors
	InitBucketErr           error
	GenerateUploadLinkErr   error
	GenerateDownloadLinkErr error
	RemoveErr               error
	ListErr                 error
	FileExistsErr           error

	// call flags
	InitBucketCalled           bool
	GenerateUploadLinkCalled   bool
	GenerateDownloadLinkCalled bool
	RemoveCalled               bool
	ListCalled                 bool
	FileExistsCalled           bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	m.Bucket = bucket
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateUploadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateUploadLinkErr != nil {
		return "", m.GenerateUploadLinkErr
	}
	return "https://example.com/upload", nil
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return "https://example.com/download", nil
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return nil
}

func (m *Storage) ListFiles(ctx context.Context, bucket string) ([]port.FileInfo, error) {
	m.ListCalled = true
	m.Bucket = bucket
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
