package api

import (
	"net/http"

	"github.com/fgaudin/file-gateway-go/internal/api_context"
)

// ObjectKeyFromRequest returns the decoded object key placed in the request
// context by the router middleware.
func ObjectKeyFromRequest(r *http.Request) (string, bool) {
	return api_context.ObjectKeyFromContext(r.Context())
}
