/*
Package limiter provides client-side rate limiting for outbound HTTP requests.

It utilizes the Token Bucket algorithm (rate.Limiter) to cap how fast the client talks
to the game API, so a player hammering Enter after network errors cannot flood it.
*/
package limiter

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Transport is an http.RoundTripper that waits for a token before every request.
type Transport struct {
	// limiter is the shared token bucket for all requests passing through this transport.
	limiter *rate.Limiter

	// next is the RoundTripper that performs the actual request.
	next http.RoundTripper
}

// NewTransport creates a rate-limited RoundTripper.
// It accepts rate r (requests per second) and burst capacity b. A nil next means http.DefaultTransport.
func NewTransport(next http.RoundTripper, r rate.Limit, b int) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{
		limiter: rate.NewLimiter(r, b),
		next:    next,
	}
}

// RoundTrip blocks until the limiter allows the request or the request context is done.
func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(r)
}
