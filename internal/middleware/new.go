package middleware

import (
	"lifedesk/pkg/log"
)

type Middleware struct {
	l           log.Logger
	apiKey      string
	rateLimiter *rateLimiter
}

// New creates the shared middleware set. apiKey may be empty, which disables
// authentication (local development). previewRateLimitPerMin bounds the
// quick-add preview endpoint per client IP.
func New(l log.Logger, apiKey string, previewRateLimitPerMin int) Middleware {
	return Middleware{
		l:           l,
		apiKey:      apiKey,
		rateLimiter: newRateLimiter(previewRateLimitPerMin),
	}
}
