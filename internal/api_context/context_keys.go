package api_context

import (
	"context"
)

type ctxKey string

const ObjectKeyKey ctxKey = "object_key"

// ObjectKeyFromContext returns the decoded object key stashed by the router
// middleware, if any.
func ObjectKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(ObjectKeyKey).(string)
	return key, ok
}
