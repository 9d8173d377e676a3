package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"halalassist-core/internal/domain/entity"
)

// HTTPRelay fetches an externally generated image and re-serves its bytes,
// routing around the browser's cross-origin canvas restrictions.
type HTTPRelay struct {
	httpc *http.Client
}

func NewHTTPRelay() *HTTPRelay {
	return &HTTPRelay{httpc: &http.Client{Timeout: 30 * time.Second}}
}

func (r *HTTPRelay) Relay(ctx context.Context, sourceURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstreamFetch, err)
	}

	resp, err := r.httpc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: source returned %s", entity.ErrUpstreamFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstreamFetch, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return body, contentType, nil
}
