package storage

import (
	"fmt"

	"github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
	"github.com/minio/minio-go/v7"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return gateway.ErrObjectNotFound
	case "NoSuchBucket":
		return gateway.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return gateway.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", gateway.ErrInternal, err)
	}
}
