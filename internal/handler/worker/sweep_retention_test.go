package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/task"
)

type mockRetentionSweeper struct {
	out    port.SweepRetentionOutput
	err    error
	called bool
}

func (m *mockRetentionSweeper) SweepRetention(ctx context.Context) (port.SweepRetentionOutput, error) {
	m.called = true
	return m.out, m.err
}

func TestSweepRetentionHandler(t *testing.T) {
	p := task.SweepRetentionPayload{RequestedAt: time.Now().UTC()}

	t.Run("success", func(t *testing.T) {
		svc := &mockRetentionSweeper{out: port.SweepRetentionOutput{Scanned: 3, Removed: 1}}
		if err := SweepRetentionHandler(context.Background(), p, svc); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !svc.called {
			t.Error("expected the sweeper to be called")
		}
	})

	t.Run("sweep error bubbles up", func(t *testing.T) {
		svc := &mockRetentionSweeper{err: errors.New("sweep failure")}
		if err := SweepRetentionHandler(context.Background(), p, svc); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
