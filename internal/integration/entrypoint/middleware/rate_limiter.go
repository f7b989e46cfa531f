// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/e-budget/backend/internal/domain/error"
	"github.com/e-budget/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxRequests is the default number of allowed requests per window.
	defaultMaxRequests = 100
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	redisKeyPrefix = "ledger:ratelimit:"
)

// RateLimitStore counts requests per key within a fixed window.
type RateLimitStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	requests  int
	resetTime time.Time
}

// MemoryStore keeps counters in process memory. Suitable for a single instance.
type MemoryStore struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxRequests    int
	windowDuration time.Duration
	now            func() time.Time
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(maxRequests int, windowDuration time.Duration) *MemoryStore {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &MemoryStore{
		entries:        make(map[string]*rateLimitEntry),
		maxRequests:    maxRequests,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Allow checks if a request from the given key should be allowed.
func (s *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			requests:  1,
			resetTime: now.Add(s.windowDuration),
		}
		return true, nil
	}

	if entry.requests < s.maxRequests {
		entry.requests++
		return true, nil
	}

	return false, nil
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RunCleanup drops expired entries every interval until ctx is done, so the
// map does not grow with every client ever seen.
func (s *MemoryStore) RunCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = s.windowDuration
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

// RedisStore keeps counters in Redis so every API instance shares one limit.
type RedisStore struct {
	client         redis.Cmdable
	maxRequests    int
	windowDuration time.Duration
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client redis.Cmdable, maxRequests int, windowDuration time.Duration) *RedisStore {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RedisStore{
		client:         client,
		maxRequests:    maxRequests,
		windowDuration: windowDuration,
	}
}

// Allow increments the key's counter, starting the window on the first hit.
func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(s.maxRequests), nil
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store   RateLimitStore
	enabled bool
}

// NewRateLimiter creates a rate limiter over the given store.
func NewRateLimiter(store RateLimitStore, enabled bool) *RateLimiter {
	return &RateLimiter{
		store:   store,
		enabled: enabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled || rl.store == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// Fail open: a broken limiter must not take the API down.
			slog.Warn("Rate limit store unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "Too many requests. Please try again later.",
				Code:    string(domainerror.ErrCodeRateLimited),
				Details: []dto.ErrorDetail{},
			})
			return
		}

		c.Next()
	}
}
