package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
)

// HTTPUploader talks to the upload-by-URL hosting provider: POST the raw image
// data, get back the permanent URL. The provider endpoint is opaque to us.
type HTTPUploader struct {
	endpoint string
	client   *http.Client
}

// NewHTTPUploader builds an uploader against the given endpoint. An empty
// endpoint yields a disabled uploader that rejects every upload, so the API
// can run without a media provider configured.
func NewHTTPUploader(endpoint string) *HTTPUploader {
	return &HTTPUploader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

var _ port.Uploader = (*HTTPUploader)(nil)

// ErrUploaderDisabled is returned when no provider endpoint is configured.
var ErrUploaderDisabled = errors.New("media: upload provider not configured")

type uploadRequest struct {
	Image string `json:"image"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (u *HTTPUploader) Upload(ctx context.Context, data string) (string, error) {
	if u.endpoint == "" {
		return "", ErrUploaderDisabled
	}
	if data == "" {
		return "", errors.New("media: empty image data")
	}

	body, err := json.Marshal(uploadRequest{Image: data})
	if err != nil {
		return "", fmt.Errorf("media: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("media: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("media: upload failed with status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("media: decode response: %w", err)
	}
	if out.URL == "" {
		return "", errors.New("media: provider returned no url")
	}
	return out.URL, nil
}
