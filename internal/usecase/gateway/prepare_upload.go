package gateway

import (
	"context"
	"net/http"
	"path"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/port"
)

// uploadURLTTL is how long an issued upload URL stays valid.
const uploadURLTTL = 15 * time.Minute

type uploadPreparerSrv struct {
	strg    port.Storage
	bucket  string
	genUUID port.UUIDGen
}

// compile-time check: *uploadPreparerSrv must satisfy port.UploadPreparer
var _ port.UploadPreparer = (*uploadPreparerSrv)(nil)

func NewUploadPreparer(strg port.Storage, bucket string, genUUID port.UUIDGen) port.UploadPreparer {
	return &uploadPreparerSrv{strg: strg, bucket: bucket, genUUID: genUUID}
}

func (s *uploadPreparerSrv) PrepareUpload(ctx context.Context, in port.PrepareUploadInput) (port.PrepareUploadOutput, error) {
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Keys are opaque: a fresh UUID plus the original extension, so two
	// uploads of the same filename never collide.
	objectKey := s.genUUID().String() + path.Ext(in.Filename)

	url, err := s.strg.GeneratePresignedUploadURL(ctx, s.bucket, objectKey, uploadURLTTL)
	if err != nil {
		return port.PrepareUploadOutput{}, err
	}

	return port.PrepareUploadOutput{
		ObjectKey:   objectKey,
		UploadURL:   url,
		Method:      http.MethodPut,
		ContentType: contentType,
		ExpiresIn:   int(uploadURLTTL.Seconds()),
	}, nil
}
