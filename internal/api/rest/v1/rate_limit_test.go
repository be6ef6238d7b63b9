//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "clients have separate buckets")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestIPRateLimiter_Purge(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(10 * time.Minute)
	limiter.Allow("10.0.0.2")

	assert.Equal(t, 1, limiter.Purge(5*time.Minute))
	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "10.0.0.2")
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 1)
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req, _ := http.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)
	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}
