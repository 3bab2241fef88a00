package http

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/allisson/voice-token-server/internal/errors"
	"github.com/allisson/voice-token-server/internal/httputil"
)

const (
	// limiterCleanupInterval is how often stale per-IP limiters are swept.
	limiterCleanupInterval = 5 * time.Minute
	// limiterIdleTTL is how long a limiter may go unused before it is swept.
	limiterIdleTTL = time.Hour
)

// tokenRateLimiterStore holds per-IP rate limiters with automatic cleanup.
type tokenRateLimiterStore struct {
	limiters sync.Map // map[string]*tokenRateLimiterEntry (IP -> limiter)
	rps      float64
	burst    int
}

// tokenRateLimiterEntry holds a rate limiter and last access time for cleanup.
type tokenRateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// TokenRateLimitMiddleware enforces per-IP rate limiting on the token endpoint.
//
// Uses the token bucket algorithm via golang.org/x/time/rate, one bucket per client IP
// as reported by c.ClientIP(). The sweep of idle limiters stops when ctx is done.
//
// Returns:
//   - 429 Too Many Requests: Rate limit exceeded (includes Retry-After header)
//   - Continues: Request allowed within rate limit
func TokenRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &tokenRateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	go store.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTTL)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.getLimiter(clientIP)

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
			reservation.Cancel()

			logger.Debug("token rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			httputil.HandleErrorGin(c, apperrors.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates a rate limiter for an IP address.
func (s *tokenRateLimiterStore) getLimiter(ip string) *rate.Limiter {
	if val, ok := s.limiters.Load(ip); ok {
		entry := val.(*tokenRateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &tokenRateLimiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: time.Now(),
	}

	// Concurrent first requests from one IP share a single limiter
	actual, _ := s.limiters.LoadOrStore(ip, entry)
	return actual.(*tokenRateLimiterEntry).limiter
}

// cleanupStale removes rate limiters that haven't been accessed within idleTTL.
func (s *tokenRateLimiterStore) cleanupStale(ctx context.Context, interval, idleTTL time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now().Add(-idleTTL))
		}
	}
}

// sweep deletes every limiter last accessed before threshold.
func (s *tokenRateLimiterStore) sweep(threshold time.Time) {
	s.limiters.Range(func(key, value interface{}) bool {
		entry := value.(*tokenRateLimiterEntry)
		entry.mu.Lock()
		shouldDelete := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if shouldDelete {
			s.limiters.Delete(key)
		}
		return true
	})
}
