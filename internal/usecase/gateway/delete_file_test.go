package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/fgaudin/file-gateway-go/internal/mock"
)

func TestDeleteFile_Success(t *testing.T) {
	strg := &mock.Storage{ExistsOut: true}
	ca := &mock.Cache{}
	svc := NewFileDeleter(strg, ca, "files")

	if err := svc.DeleteFile(context.Background(), "abc123.txt"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strg.RemoveCalled {
		t.Error("expected strg.RemoveFile to be called")
	}
	if strg.ObjectKey != "abc123.txt" {
		t.Errorf("strg called with key %q, want %q", strg.ObjectKey, "abc123.txt")
	}
	if !ca.DeleteCalled {
		t.Error("expected the cached download URL to be evicted")
	}
}

func TestDeleteFile_ObjectMissing(t *testing.T) {
	strg := &mock.Storage{ExistsOut: false}
	ca := &mock.Cache{}
	svc := NewFileDeleter(strg, ca, "files")

	err := svc.DeleteFile(context.Background(), "nope.txt")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
	if strg.RemoveCalled {
		t.Error("did not expect strg.RemoveFile to be called")
	}
}

func TestDeleteFile_RemoveError(t *testing.T) {
	strg := &mock.Storage{ExistsOut: true, RemoveErr: errors.New("remove failure")}
	ca := &mock.Cache{}
	svc := NewFileDeleter(strg, ca, "files")

	if err := svc.DeleteFile(context.Background(), "abc123.txt"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if ca.DeleteCalled {
		t.Error("cache must not be evicted when the removal failed")
	}
}

func TestDeleteFile_CacheEvictionErrorIsNotFatal(t *testing.T) {
	strg := &mock.Storage{ExistsOut: true}
	ca := &mock.Cache{DeleteErr: errors.New("redis down")}
	svc := NewFileDeleter(strg, ca, "files")

	if err := svc.DeleteFile(context.Background(), "abc123.txt"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
