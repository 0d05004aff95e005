package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"
)

// TokenBucket is a simple token bucket rate limiter
type TokenBucket struct {
	rate       float64    // tokens refilled per second
	capacity   int        // bucket capacity
	tokens     float64    // current token count
	lastRefill time.Time  // last refill time
	mu         sync.Mutex // guards the fields above
}

// NewTokenBucket creates a token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.RWMutex
)

// getIPLimiter returns the limiter for an IP, creating it if needed
func getIPLimiter(ip string, rate float64, capacity int) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if exists {
		return limiter
	}

	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	// Re-check under the write lock
	if limiter, exists = ipLimiters[ip]; exists {
		return limiter
	}

	limiter = NewTokenBucket(rate, capacity)
	ipLimiters[ip] = limiter
	return limiter
}

// IPRateLimiter limits requests per client IP
func IPRateLimiter(rate float64, capacity int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := getIPLimiter(ip, rate, capacity)

		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
