package port

import (
	"context"

	"github.com/fgaudin/file-gateway-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// UploadPreparer issues a presigned link to upload a file directly to storage.
type UploadPreparer interface {
	PrepareUpload(ctx context.Context, in PrepareUploadInput) (PrepareUploadOutput, error)
}
type PrepareUploadInput struct {
	Filename    string
	ContentType string
}
type PrepareUploadOutput struct {
	ObjectKey   string `json:"objectKey"`
	UploadURL   string `json:"uploadUrl"`
	Method      string `json:"method"`
	ContentType string `json:"contentType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// DownloadRedirector resolves an object key to a presigned download location.
type DownloadRedirector interface {
	RedirectDownload(ctx context.Context, objectKey string) (RedirectDownloadOutput, error)
}
type RedirectDownloadOutput struct {
	Location  string
	ExpiresIn int
}

// FileDeleter removes an object and evicts its cached download URL.
type FileDeleter interface {
	DeleteFile(ctx context.Context, objectKey string) error
}

// RetentionSweeper removes objects older than the configured retention period.
type RetentionSweeper interface {
	SweepRetention(ctx context.Context) (SweepRetentionOutput, error)
}
type SweepRetentionOutput struct {
	Scanned int
	Removed int
}
