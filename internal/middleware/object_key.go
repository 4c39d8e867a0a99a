package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fgaudin/file-gateway-go/internal/api_context"
	"github.com/fgaudin/file-gateway-go/internal/handler/api"
	"github.com/go-chi/chi/v5"
)

func WithObjectKey() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := chi.URLParam(r, "objectKey")
			if key == "" {
				api.WriteError(w, http.StatusBadRequest, "Object key is required", nil)
				return
			}
			decoded, err := url.PathUnescape(key)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Object key %q is not a valid path segment", key), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.ObjectKeyKey, decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
