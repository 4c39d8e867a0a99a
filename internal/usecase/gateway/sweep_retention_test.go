package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fgaudin/file-gateway-go/internal/mock"
	"github.com/fgaudin/file-gateway-go/internal/port"
)

func TestSweepRetention(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	files := []port.FileInfo{
		{Key: "fresh.txt", LastModified: now.Add(-1 * time.Hour)},
		{Key: "stale.txt", LastModified: now.Add(-48 * time.Hour)},
		{Key: "borderline.txt", LastModified: now.Add(-24 * time.Hour)},
		{Key: "ancient.txt", LastModified: now.Add(-200 * time.Hour)},
	}

	strg := &mock.Storage{ListOut: files}
	svc := NewRetentionSweeper(strg, "files", 24*time.Hour)
	svc.(*retentionSweeperSrv).now = func() time.Time { return now }

	out, err := svc.SweepRetention(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Scanned != 4 {
		t.Errorf("expected 4 scanned, got %d", out.Scanned)
	}
	if out.Removed != 2 {
		t.Errorf("expected 2 removed, got %d", out.Removed)
	}

	want := map[string]bool{"stale.txt": true, "ancient.txt": true}
	for _, key := range strg.RemovedKeys {
		if !want[key] {
			t.Errorf("unexpected removal of %q", key)
		}
		delete(want, key)
	}
	for key := range want {
		t.Errorf("expected %q to be removed", key)
	}
}

func TestSweepRetention_ListError(t *testing.T) {
	strg := &mock.Storage{ListErr: errors.New("list failure")}
	svc := NewRetentionSweeper(strg, "files", 24*time.Hour)

	if _, err := svc.SweepRetention(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSweepRetention_RemoveErrorsAreCollected(t *testing.T) {
	now := time.Now()
	strg := &mock.Storage{
		ListOut:   []port.FileInfo{{Key: "stale.txt", LastModified: now.Add(-48 * time.Hour)}},
		RemoveErr: errors.New("remove failure"),
	}
	svc := NewRetentionSweeper(strg, "files", 24*time.Hour)

	out, err := svc.SweepRetention(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if out.Scanned != 1 || out.Removed != 0 {
		t.Errorf("expected 1 scanned / 0 removed, got %+v", out)
	}
}
