package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// clientBucket is a token bucket refilled continuously over the window.
type clientBucket struct {
	tokens float64
	last   time.Time
}

// clientLimiter keeps one bucket per client IP. Buckets idle for more than a
// full window are evicted on the next sweep.
type clientLimiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	limit   float64
	window  time.Duration
	swept   time.Time
}

func newClientLimiter(limit int, window time.Duration) *clientLimiter {
	return &clientLimiter{
		buckets: make(map[string]*clientBucket),
		limit:   float64(limit),
		window:  window,
		swept:   time.Now(),
	}
}

// allow refills the client's bucket proportionally to elapsed time and takes
// one token if available.
func (l *clientLimiter) allow(client string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.swept) > l.window {
		for k, b := range l.buckets {
			if now.Sub(b.last) > l.window {
				delete(l.buckets, k)
			}
		}
		l.swept = now
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &clientBucket{tokens: l.limit, last: now}
		l.buckets[client] = b
	} else {
		refill := now.Sub(b.last).Seconds() / l.window.Seconds() * l.limit
		b.tokens += refill
		if b.tokens > l.limit {
			b.tokens = l.limit
		}
		b.last = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// rateLimitByClient caps requests per client IP to limit per window,
// answering 429 when exceeded.
func rateLimitByClient(limit int, window time.Duration) gin.HandlerFunc {
	l := newClientLimiter(limit, window)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}
		c.Next()
	}
}
