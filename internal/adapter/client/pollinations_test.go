package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"halalassist-core/internal/adapter/client"
	"halalassist-core/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPollinationsRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	p := client.NewPollinations(srv.URL)
	body, err := p.Synthesize(context.Background(), "premium coffee shot, 8k", 1234)
	assert.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), body)

	assert.Equal(t, "/prompt/premium%20coffee%20shot%2C%208k", gotPath)
	assert.Equal(t, "width=1024&height=1024&seed=1234&nologo=true&enhance=true", gotQuery)
}

func TestPollinationsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := client.NewPollinations(srv.URL)
	_, err := p.Synthesize(context.Background(), "anything", 1)
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
}

func TestPollinationsUnreachable(t *testing.T) {
	p := client.NewPollinations("http://127.0.0.1:1")
	_, err := p.Synthesize(context.Background(), "anything", 1)
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
}
