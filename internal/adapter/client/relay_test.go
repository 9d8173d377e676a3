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

func TestRelayRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	body, contentType, err := client.NewHTTPRelay().Relay(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "image/png", contentType)
}

func TestRelayDefaultsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Suppress Go's automatic content-type sniffing header.
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	_, contentType, err := client.NewHTTPRelay().Relay(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestRelayUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, _, err := client.NewHTTPRelay().Relay(context.Background(), srv.URL)
	assert.ErrorIs(t, err, entity.ErrUpstreamFetch)
}
