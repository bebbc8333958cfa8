package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-optimizer/repository"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRateLimiter_BurstThenDrip(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	rl := newRateLimiter(2, time.Minute, clock.Now)

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "buckets are per client")

	clock.Advance(30 * time.Second)
	assert.True(t, rl.Allow("a"), "one token is back after half a period")
	assert.False(t, rl.Allow("a"))

	clock.Advance(10 * time.Minute)
	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"), "refill never exceeds capacity")
}

func TestRateLimiter_ZeroCapacityDeniesAll(t *testing.T) {
	rl := newRateLimiter(0, time.Minute, time.Now)
	assert.False(t, rl.Allow("a"))
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	rl := newRateLimiter(2, time.Minute, clock.Now)

	rl.Allow("a")
	rl.Allow("b")
	require.Equal(t, 2, rl.clientCount())

	clock.Advance(2 * time.Minute)
	rl.Allow("c")

	assert.Equal(t, 1, rl.clientCount())
}

func requestFrom(router http.Handler, path, peer string, header http.Header) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = peer
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_GuardsPageAndAPI(t *testing.T) {
	rl := newRateLimiter(2, time.Hour, time.Now)
	router := newTestRouter(t, rl)

	assert.Equal(t, http.StatusOK, requestFrom(router, "/api/defaults", "10.0.0.1:1234", nil))
	assert.Equal(t, http.StatusOK, requestFrom(router, "/", "10.0.0.1:1234", nil))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "/", "10.0.0.1:1234", nil))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "/api/defaults", "10.0.0.1:1234", nil))
	assert.Equal(t, http.StatusOK, requestFrom(router, "/healthz", "10.0.0.1:1234", nil))
}

func TestRateLimitMiddleware_IgnoresForwardedHeadersByDefault(t *testing.T) {
	rl := newRateLimiter(1, time.Hour, time.Now)
	router := newTestRouter(t, rl)

	allowed := 0
	for i := 0; i < 20; i++ {
		header := http.Header{}
		header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		if requestFrom(router, "/api/defaults", "10.0.0.1:1234", header) == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed, "one TCP peer shares one bucket whatever headers it sends")
}

func TestRateLimitMiddleware_TrustedProxyChargesForwardedClient(t *testing.T) {
	rl := newRateLimiter(1, time.Hour, time.Now)
	router := buildTestRouter(t, testRouterOptions{limiter: rl, trustProxy: true})

	forwarded := func(client string) http.Header {
		h := http.Header{}
		h.Set("X-Forwarded-For", client)
		return h
	}

	assert.Equal(t, http.StatusOK, requestFrom(router, "/api/defaults", "10.0.0.1:1234", forwarded("203.0.113.1")))
	assert.Equal(t, http.StatusOK, requestFrom(router, "/api/defaults", "10.0.0.1:1234", forwarded("203.0.113.2")))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "/api/defaults", "10.0.0.1:1234", forwarded("203.0.113.1")))
}

func TestDashboardPage_CacheStaysBounded(t *testing.T) {
	cache := repository.NewMemoryCache(50, time.Hour)
	router := buildTestRouter(t, testRouterOptions{cache: cache})

	for i := 0; i < 500; i++ {
		path := fmt.Sprintf("/?investment=%d.5", 10_000+i)
		require.Equal(t, http.StatusOK, requestFrom(router, path, "10.0.0.1:1234", nil))
	}

	assert.LessOrEqual(t, cache.Len(), 50)
}
