package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
)

type mockFileDeleter struct {
	err error
	key string
}

func (m *mockFileDeleter) DeleteFile(ctx context.Context, objectKey string) error {
	m.key = objectKey
	return m.err
}

func TestDeleteFileHandler(t *testing.T) {
	tests := []struct {
		name             string
		objectKey        string
		svcErr           error
		wantStatus       int
		wantBodyContains string
	}{
		{
			name:       "happy path",
			objectKey:  "abc123.txt",
			wantStatus: http.StatusNoContent,
		},
		{
			name:             "object not found",
			objectKey:        "nope.txt",
			svcErr:           gateway.ErrObjectNotFound,
			wantStatus:       http.StatusNotFound,
			wantBodyContains: "File not found",
		},
		{
			name:             "service error",
			objectKey:        "abc123.txt",
			svcErr:           errors.New("boom"),
			wantStatus:       http.StatusInternalServerError,
			wantBodyContains: "Could not delete file",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mockFileDeleter{err: tc.svcErr}
			handlerFn := DeleteFileHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/files/"+tc.objectKey, nil)
			req = withObjectKey(req, tc.objectKey)
			rec := httptest.NewRecorder()

			handlerFn(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantBodyContains != "" && !strings.Contains(rec.Body.String(), tc.wantBodyContains) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBodyContains)
			}
			if tc.wantStatus == http.StatusNoContent {
				if rec.Body.Len() != 0 {
					t.Errorf("expected empty body, got %q", rec.Body.String())
				}
				if mockSvc.key != tc.objectKey {
					t.Errorf("svc called with key %q; want %q", mockSvc.key, tc.objectKey)
				}
			}
		})
	}
}
