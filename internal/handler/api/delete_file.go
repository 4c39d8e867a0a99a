package api

import (
	"errors"
	"net/http"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
)

func DeleteFileHandler(svc port.FileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objectKey, ok := ObjectKeyFromRequest(r)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Object key is required", nil)
			return
		}

		if err := svc.DeleteFile(r.Context(), objectKey); err != nil {
			if errors.Is(err, gateway.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "File not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not delete file", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted object %q", objectKey)
	}
}
