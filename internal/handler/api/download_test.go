package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fgaudin/file-gateway-go/internal/api_context"
	"github.com/fgaudin/file-gateway-go/internal/port"
	"github.com/fgaudin/file-gateway-go/internal/usecase/gateway"
)

type mockDownloadRedirector struct {
	out port.RedirectDownloadOutput
	err error
	key string
}

func (m *mockDownloadRedirector) RedirectDownload(ctx context.Context, objectKey string) (port.RedirectDownloadOutput, error) {
	m.key = objectKey
	return m.out, m.err
}

func withObjectKey(req *http.Request, key string) *http.Request {
	ctx := context.WithValue(req.Context(), api_context.ObjectKeyKey, key)
	return req.WithContext(ctx)
}

func TestDownloadHandler(t *testing.T) {
	tests := []struct {
		name             string
		objectKey        string
		svcOut           port.RedirectDownloadOutput
		svcErr           error
		wantStatus       int
		wantLocation     string
		wantBodyContains string
	}{
		{
			name:      "happy path",
			objectKey: "abc123.txt",
			svcOut: port.RedirectDownloadOutput{
				Location:  "https://storage.example.com/signed-get",
				ExpiresIn: 3600,
			},
			wantStatus:       http.StatusTemporaryRedirect,
			wantLocation:     "https://storage.example.com/signed-get",
			wantBodyContains: "Redirecting to download URL",
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
			wantBodyContains: "Could not generate download URL",
		},
		{
			name:             "missing object key in context",
			objectKey:        "",
			wantStatus:       http.StatusBadRequest,
			wantBodyContains: "Object key is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mockDownloadRedirector{out: tc.svcOut, err: tc.svcErr}
			handlerFn := DownloadHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/files/"+tc.objectKey, nil)
			if tc.objectKey != "" {
				req = withObjectKey(req, tc.objectKey)
			}
			rec := httptest.NewRecorder()

			handlerFn(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if got := rec.Header().Get("Location"); got != tc.wantLocation {
				t.Errorf("Location = %q; want %q", got, tc.wantLocation)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBodyContains) {
				t.Errorf("body = %q; want to contain %q", rec.Body.String(), tc.wantBodyContains)
			}

			if tc.wantStatus == http.StatusTemporaryRedirect {
				var body DownloadResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("JSON decode = %v (body=%q)", err, rec.Body.String())
				}
				if body.ExpiresIn != tc.svcOut.ExpiresIn {
					t.Errorf("ExpiresIn = %d; want %d", body.ExpiresIn, tc.svcOut.ExpiresIn)
				}
				if mockSvc.key != tc.objectKey {
					t.Errorf("svc called with key %q; want %q", mockSvc.key, tc.objectKey)
				}
			}
		})
	}
}
