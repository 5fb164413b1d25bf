// Package middleware provides gin middleware for the API: request
// admission (rate limiting), bearer-token authentication, the admin gate,
// and CORS.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimiter admits at most `limit` requests per client within the
// trailing `window`. Each client's request timestamps are kept ordered and
// pruned on every call, so the (limit+1)-th request inside the window is
// rejected and a request issued after the earliest stamp ages out is
// admitted again.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	window time.Duration
	limit  int
	now    func() time.Time
	log    *logrus.Logger
}

func NewRateLimiter(window time.Duration, limit int, log *logrus.Logger) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string][]time.Time),
		window: window,
		limit:  limit,
		now:    time.Now,
		log:    log,
	}
}

// Allow records the request for key and reports whether it is admitted.
// Never errors; the decision is the whole contract.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	stamps := rl.hits[key]
	valid := stamps[:0]
	for _, t := range stamps {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.limit {
		rl.hits[key] = valid
		return false
	}
	rl.hits[key] = append(valid, now)
	return true
}

// Handler applies the limiter keyed by client IP.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.Allow(key) {
			rl.log.WithFields(logrus.Fields{
				"client": key,
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"message": "Too many requests, please try again later"})
			return
		}
		c.Next()
	}
}

// Sweep drops clients whose every stamp has aged out of the window, keeping
// the map from growing without bound under traffic from many addresses.
func (rl *RateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for key, stamps := range rl.hits {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(rl.hits, key)
		}
	}
}

// StartSweep runs Sweep every interval until the process exits.
func (rl *RateLimiter) StartSweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			rl.Sweep()
		}
	}()
}
