package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(window time.Duration, limit int) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(window, limit, quietLogger())
	rl.now = clock.now
	return rl, clock
}

func TestAllowRejectsOverLimit(t *testing.T) {
	rl, _ := newTestLimiter(15*time.Minute, 100)

	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should be admitted", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "request 101 within the window is rejected")

	// other identifiers are unaffected
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestAllowAdmitsAfterWindowElapses(t *testing.T) {
	rl, clock := newTestLimiter(15*time.Minute, 2)

	assert.True(t, rl.Allow("k"))
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	// once the earliest stamp ages out, one slot frees up
	clock.advance(15*time.Minute + time.Second)
	assert.True(t, rl.Allow("k"))
}

func TestAllowSlidesNotResets(t *testing.T) {
	rl, clock := newTestLimiter(10*time.Minute, 2)

	assert.True(t, rl.Allow("k"))
	clock.advance(6 * time.Minute)
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	// first stamp (t0) is now outside the window, second (t0+6m) is not
	clock.advance(5 * time.Minute)
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))
}

func TestSweepEvictsStaleIdentifiers(t *testing.T) {
	rl, clock := newTestLimiter(time.Minute, 10)

	rl.Allow("old")
	clock.advance(2 * time.Minute)
	rl.Allow("fresh")

	rl.Sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.hits, "old")
	assert.Contains(t, rl.hits, "fresh")
}

func TestHandlerReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl, _ := newTestLimiter(time.Minute, 1)

	r := gin.New()
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	resp := do()
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.JSONEq(t, `{"message":"Too many requests, please try again later"}`, resp.Body.String())
}
