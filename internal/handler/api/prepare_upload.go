package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fgaudin/file-gateway-go/internal/logger"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/validation"
)

type PrepareUploadRequest struct {
	Filename    string `json:"filename" validate:"required,max=80"`
	ContentType string `json:"contentType" validate:"omitempty,max=100"`
}

func PrepareUploadHandler(svc port.UploadPreparer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrepareUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.PrepareUploadInput(req)
		out, err := svc.PrepareUpload(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not generate upload URL", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully issued upload URL for object %q", out.ObjectKey)
	}
}
