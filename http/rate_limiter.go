package http

import (
	"math"
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	seen   time.Time
}

// RateLimiter is a per-client token bucket. Tokens drip back continuously,
// capacity of them per refill period, so a burst only locks a client out
// until the next token arrives.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  float64
	refill    time.Duration
	perToken  time.Duration
	buckets   map[string]*bucket
	now       func() time.Time
	nextSweep time.Time
}

func NewRateLimiter(capacity int, refill time.Duration) *RateLimiter {
	return newRateLimiter(capacity, refill, time.Now)
}

func newRateLimiter(capacity int, refill time.Duration, now func() time.Time) *RateLimiter {
	perToken := time.Nanosecond
	if capacity > 0 && refill/time.Duration(capacity) > perToken {
		perToken = refill / time.Duration(capacity)
	}
	return &RateLimiter{
		capacity: float64(capacity),
		refill:   refill,
		perToken: perToken,
		buckets:  make(map[string]*bucket),
		now:      now,
	}
}

// Allow takes one token from client's bucket and reports whether the
// request may proceed.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	b, ok := r.buckets[client]
	if !ok {
		b = &bucket{tokens: r.capacity, seen: now}
		r.buckets[client] = b
	} else {
		earned := float64(now.Sub(b.seen)) / float64(r.perToken)
		b.tokens = math.Min(r.capacity, b.tokens+earned)
		b.seen = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle for a whole refill period; they would be full
// again anyway. It runs at most once per period. Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Before(r.nextSweep) {
		return
	}
	for client, b := range r.buckets {
		if now.Sub(b.seen) >= r.refill {
			delete(r.buckets, client)
		}
	}
	r.nextSweep = now.Add(r.refill)
}

func (r *RateLimiter) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buckets)
}
