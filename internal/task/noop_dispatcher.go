package task

import (
	"context"

	"github.com/fgaudin/file-gateway-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueSweepRetention(ctx context.Context) error {
	return nil
}
