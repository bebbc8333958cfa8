package http

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"healthcare-optimizer/metrics"
)

// ClientKey identifies the client a request is charged to.
type ClientKey func(r *http.Request) string

// PeerAddress keys clients by the host part of RemoteAddr. Unless the
// router trusts proxy headers, that is the TCP peer.
func PeerAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware rejects clients that exhausted their bucket with 429.
func RateLimitMiddleware(limiter *RateLimiter, key ClientKey, log *zap.Logger) func(http.Handler) http.Handler {
	if key == nil {
		key = PeerAddress
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := key(r)
			if !limiter.Allow(client) {
				metrics.RateLimited.Inc()
				log.Info("rate limit exceeded", zap.String("client", client), zap.String("path", r.URL.Path))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
