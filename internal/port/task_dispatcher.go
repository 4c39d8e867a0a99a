package port

import "context"

// TaskDispatcher enqueues background work.
type TaskDispatcher interface {
	EnqueueSweepRetention(ctx context.Context) error
}
