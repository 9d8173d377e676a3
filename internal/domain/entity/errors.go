package entity

import "errors"

// Standard domain errors
var (
	ErrMissingAPIKey       = errors.New("gemini api key is not configured")
	ErrInvalidRequest      = errors.New("invalid request parameters")
	ErrUpstreamUnavailable = errors.New("upstream model service unavailable")
	ErrUpstreamEmpty       = errors.New("upstream returned an empty response")
	ErrUpstreamFetch       = errors.New("failed to fetch external resource")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded: too many requests today")
	ErrSessionBusy         = errors.New("a reply is already in flight for this session")
	ErrSessionReset        = errors.New("session was reset while the reply was in flight")
)
