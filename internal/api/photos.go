package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/FELTRINCyril/cinebase/pkg/prometheus"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

// PhotoURL resolves a photo path served by the backend against the base URL.
// Absolute URLs pass through unchanged.
func (c *Client) PhotoURL(rel string) string {
	if rel == "" {
		return ""
	}
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
		return rel
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return c.baseURL + rel
}

// FetchImage downloads a served photo for display
func (c *Client) FetchImage(ctx context.Context, rel string) ([]byte, error) {
	const op = "Client.FetchImage"

	target := c.PhotoURL(rel)
	if target == "" {
		return nil, fmt.Errorf("%s: empty photo path", op)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// uploadPhoto posts a multipart image to an entity photo endpoint and returns
// the served photo path. The part carries the real image content type; the
// backend rejects parts sent as application/octet-stream.
func (c *Client) uploadPhoto(ctx context.Context, operation, path, filename string, photo io.Reader) (string, error) {
	name := filepath.Base(filename)
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s: %q is not an image file", operation, name)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create form part: %w", operation, err)
	}
	written, err := io.Copy(part, photo)
	if err != nil {
		return "", fmt.Errorf("%s: failed to read photo: %w", operation, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%s: failed to finish form: %w", operation, err)
	}

	data, err := c.do(ctx, operation, http.MethodPost, path, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	prometheus.UploadBytes.Add(float64(written))

	var uploaded struct {
		PhotoURL string `json:"photo_url"`
	}
	if err := json.Unmarshal(data, &uploaded); err != nil {
		return "", fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}
	return uploaded.PhotoURL, nil
}
