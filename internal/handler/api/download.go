package api

import (
	"errors"
	"net/http"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
)

type DownloadResponse struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn"`
}

func DownloadHandler(svc port.DownloadRedirector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objectKey, ok := ObjectKeyFromRequest(r)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Object key is required", nil)
			return
		}

		out, err := svc.RedirectDownload(r.Context(), objectKey)
		if err != nil {
			if errors.Is(err, gateway.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "File not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not generate download URL", err)
			return
		}

		w.Header().Set("Location", out.Location)
		RespondJSON(w, http.StatusTemporaryRedirect, DownloadResponse{
			Message:   "Redirecting to download URL",
			ExpiresIn: out.ExpiresIn,
		})
		logger.Infof(r.Context(), "✅  Redirecting download of object %q", objectKey)
	}
}
