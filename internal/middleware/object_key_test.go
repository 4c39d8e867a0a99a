package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fgaudin/file-gateway-go/internal/api_context"
	"github.com/go-chi/chi/v5"
)

func TestWithObjectKey(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantKey    string
	}{
		{
			name:       "plain key",
			path:       "/files/abc123.txt",
			wantStatus: http.StatusOK,
			wantKey:    "abc123.txt",
		},
		{
			name:       "percent-encoded key is decoded",
			path:       "/files/some%20file.txt",
			wantStatus: http.StatusOK,
			wantKey:    "some file.txt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotKey string
			var gotOK bool

			r := chi.NewRouter()
			r.With(WithObjectKey()).Get("/files/{objectKey}", func(w http.ResponseWriter, r *http.Request) {
				gotKey, gotOK = api_context.ObjectKeyFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body=%q)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if !gotOK {
				t.Fatal("expected the object key in the request context")
			}
			if gotKey != tc.wantKey {
				t.Errorf("object key = %q; want %q", gotKey, tc.wantKey)
			}
		})
	}
}

func TestWithObjectKey_MissingKey(t *testing.T) {
	// a route without the URL param never reaches the handler
	r := chi.NewRouter()
	r.With(WithObjectKey()).Get("/files", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "Object key is required") {
		t.Errorf("body = %q; want object-key error", rec.Body.String())
	}
}
