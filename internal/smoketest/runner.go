package smoketest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// uploadTicket is the contract of POST /files. Both fields are mandatory:
// without them there is nothing to upload to or fetch back.
type uploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// Runner exercises a deployed File Gateway end to end: request an upload
// URL, upload a file, fetch it back through the redirect endpoint and
// compare the bytes. Every network call is attempted exactly once; the
// first fatal failure aborts the run. The remote object is never cleaned
// up, local files only on success.
type Runner struct {
	BaseURL string

	// Client follows redirects; NoRedirectClient stops at the first
	// response so the 307 itself can be inspected.
	Client           *http.Client
	NoRedirectClient *http.Client

	Out io.Writer

	SrcPath string
	DstPath string
}

func New(baseURL string) *Runner {
	return &Runner{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
		NoRedirectClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Out:     os.Stdout,
		SrcPath: "smoketest-upload.txt",
		DstPath: "smoketest-download.txt",
	}
}

// Run performs the six steps in order and returns the first fatal error.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.run(ctx); err != nil {
		fmt.Fprintf(r.Out, "❌  %v\n", err)
		return err
	}
	return nil
}

func (r *Runner) run(ctx context.Context) error {
	payload := fmt.Sprintf("File Gateway smoke test payload\ncreated at %s\n", time.Now().UTC().Format(time.RFC3339))
	if err := os.WriteFile(r.SrcPath, []byte(payload), 0o644); err != nil {
		return fmt.Errorf("preparing local file %q: %w", r.SrcPath, err)
	}
	fmt.Fprintf(r.Out, "✅  Prepared local file %s\n", r.SrcPath)

	ticket, err := r.requestUploadTicket(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "✅  Got upload URL for object key %q\n", ticket.ObjectKey)

	if err := r.upload(ctx, ticket.UploadURL, []byte(payload)); err != nil {
		return err
	}
	fmt.Fprintln(r.Out, "✅  Uploaded payload (HTTP 200)")

	// advisory only: a deviating redirect shape is worth knowing about
	// but must not abort the run
	r.probeRedirect(ctx, ticket.ObjectKey)

	if err := r.download(ctx, ticket.ObjectKey); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "✅  Downloaded object to %s\n", r.DstPath)

	downloaded, err := os.ReadFile(r.DstPath)
	if err != nil {
		return fmt.Errorf("reading downloaded file %q: %w", r.DstPath, err)
	}
	if !bytes.Equal([]byte(payload), downloaded) {
		return errors.New("content mismatch: downloaded bytes differ from the uploaded payload")
	}
	fmt.Fprintln(r.Out, "✅  Downloaded content matches the original")

	// local cleanup happens only on the success path
	_ = os.Remove(r.SrcPath)
	_ = os.Remove(r.DstPath)

	fmt.Fprintln(r.Out, "🎉 Smoke test passed")
	return nil
}

func (r *Runner) requestUploadTicket(ctx context.Context) (uploadTicket, error) {
	body, err := json.Marshal(map[string]string{
		"filename":    "smoketest.txt",
		"contentType": "text/plain",
	})
	if err != nil {
		return uploadTicket{}, fmt.Errorf("encoding upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/files", bytes.NewReader(body))
	if err != nil {
		return uploadTicket{}, fmt.Errorf("building upload-URL request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return uploadTicket{}, fmt.Errorf("requesting upload URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var ticket uploadTicket
	if err := json.NewDecoder(resp.Body).Decode(&ticket); err != nil {
		return uploadTicket{}, fmt.Errorf("contract violation: could not parse upload-URL response: %w", err)
	}
	if ticket.UploadURL == "" {
		return uploadTicket{}, errors.New("contract violation: upload-URL response is missing uploadUrl")
	}
	if ticket.ObjectKey == "" {
		return uploadTicket{}, errors.New("contract violation: upload-URL response is missing objectKey")
	}
	return ticket, nil
}

func (r *Runner) upload(ctx context.Context, uploadURL string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("uploading payload: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed: expected HTTP 200, got %d", resp.StatusCode)
	}
	return nil
}

func (r *Runner) probeRedirect(ctx context.Context, objectKey string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.downloadURL(objectKey), nil)
	if err != nil {
		fmt.Fprintf(r.Out, "⚠️  Could not build redirect probe request: %v\n", err)
		return
	}

	resp, err := r.NoRedirectClient.Do(req)
	if err != nil {
		fmt.Fprintf(r.Out, "⚠️  Redirect probe failed: %v\n", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	statusOK := resp.StatusCode == http.StatusTemporaryRedirect
	locationOK := resp.Header.Get("Location") != ""

	if statusOK && locationOK {
		fmt.Fprintln(r.Out, "✅  Redirect probe passed (HTTP 307 with a Location header)")
		return
	}
	if !statusOK {
		fmt.Fprintf(r.Out, "⚠️  Expected HTTP 307 from the download endpoint, got %d\n", resp.StatusCode)
	}
	if !locationOK {
		fmt.Fprintln(r.Out, "⚠️  Location header is missing")
	}
}

func (r *Runner) download(ctx context.Context, objectKey string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.downloadURL(objectKey), nil)
	if err != nil {
		return fmt.Errorf("building download request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading object: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: expected HTTP 200, got %d", resp.StatusCode)
	}

	dst, err := os.Create(r.DstPath)
	if err != nil {
		return fmt.Errorf("creating local file %q: %w", r.DstPath, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("writing downloaded object to %q: %w", r.DstPath, err)
	}
	return nil
}

func (r *Runner) downloadURL(objectKey string) string {
	return r.BaseURL + "/files/" + url.PathEscape(objectKey)
}
