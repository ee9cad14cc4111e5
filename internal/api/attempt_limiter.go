package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// attemptLimiter counts failed attempts per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

func (limiter *attemptLimiter) blocked(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.pruneLocked(key, now)) >= limiter.limit
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.attempts[key] = append(limiter.pruneLocked(key, now), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.attempts, key)
}

func (limiter *attemptLimiter) pruneLocked(key string, now time.Time) []time.Time {
	values := limiter.attempts[key]
	if len(values) == 0 {
		return nil
	}

	threshold := now.Add(-limiter.window)
	pruned := values[:0]
	for _, value := range values {
		if value.After(threshold) {
			pruned = append(pruned, value)
		}
	}
	if len(pruned) == 0 {
		delete(limiter.attempts, key)
		return nil
	}

	limiter.attempts[key] = pruned
	return pruned
}

// loginLimiterKey scopes failures to the client address and the account
// being tried.
func loginLimiterKey(c *fiber.Ctx, email string) string {
	ip := strings.TrimSpace(c.IP())
	if ip == "" {
		ip = "unknown"
	}
	return ip + "|" + strings.ToLower(strings.TrimSpace(email))
}
