package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"halalassist-core/internal/domain/entity"
)

const DefaultImageEndpoint = "https://image.pollinations.ai"

// Pollinations synthesizes an image by encoding the prompt, dimensions and a
// seed into a URL on the public generator and fetching the bytes server-side.
type Pollinations struct {
	base  string
	httpc *http.Client
}

func NewPollinations(base string) *Pollinations {
	if base == "" {
		base = DefaultImageEndpoint
	}
	return &Pollinations{
		base:  base,
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

// requestURL builds the generator URL. The seed makes a given prompt
// reproducible; nologo and enhance match what the portal always sends.
func (p *Pollinations) requestURL(prompt string, seed int) string {
	return fmt.Sprintf("%s/prompt/%s?width=1024&height=1024&seed=%d&nologo=true&enhance=true",
		p.base, url.PathEscape(prompt), seed)
}

func (p *Pollinations) Synthesize(ctx context.Context, prompt string, seed int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(prompt, seed), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: image provider returned %s", entity.ErrUpstreamUnavailable, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
