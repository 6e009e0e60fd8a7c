/*
Package logx provides a structured logging wrapper based on zerolog.

This file contains an http.RoundTripper that logs the lifecycle of every outbound
request: method, host, path, response status and latency. Query strings and headers
are never logged, since they may carry bearer tokens or api keys.
*/
package logx

import (
	"net/http"
	"time"
)

// loggingTransport wraps another RoundTripper and logs each exchange at Debug level.
type loggingTransport struct {
	next http.RoundTripper
}

// Transport returns an http.RoundTripper that logs requests passing through next.
// A nil next means http.DefaultTransport.
func Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	logger := Logger().With().
		Str("component", "http").
		Str("request_method", r.Method).
		Str("request_host", r.URL.Host).
		Str("request_path", r.URL.Path).
		Logger()

	t1 := time.Now()
	res, err := t.next.RoundTrip(r)
	latency := time.Since(t1)

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("latency", latency).
			Msg("Request failed")
		return nil, err
	}

	logEvent := logger.Debug()
	if res.StatusCode >= 500 {
		logEvent = logger.Warn()
	}

	logEvent.
		Int("status", res.StatusCode).
		Dur("latency", latency).
		Msg("Request completed")

	return res, nil
}
