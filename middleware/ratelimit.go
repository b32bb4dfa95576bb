package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/JenilSojitra/GenericApiReponse/response"
)

// RateLimitConfig holds rate limiter configuration.
type RateLimitConfig struct {
	RPS     float64                 // Sustained requests per second per key (default 10)
	Burst   int                     // Max burst per key (default 20)
	TTL     time.Duration           // Idle time before a key's bucket is dropped (default 5 minutes)
	KeyFunc func(*http.Request) string // Limit key per request (default RemoteAddr)
}

// RateLimiter applies a token bucket per key.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	cfg      RateLimitConfig
	stopChan chan struct{}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup goroutine.
// Call Stop when the limiter is no longer needed.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RPS == 0 {
		cfg.RPS = 10
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}
	if cfg.TTL == 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(r *http.Request) string { return r.RemoteAddr }
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		cfg:      cfg,
		stopChan: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop stops the rate limiter cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cfg.TTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopChan:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.cfg.TTL)
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}
}

// Allow reports whether a request for the given key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// RateLimit returns a middleware that rejects over-limit requests with a
// 429 failure envelope.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(limiter.cfg.KeyFunc(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(1))
				env := response.FailWith(
					response.NewError(response.CodeRateLimited, "rate limit exceeded"),
					response.WithMessage("Too many requests"),
					response.WithCode(http.StatusTooManyRequests),
				)
				response.WriteJSON(w, http.StatusTooManyRequests, env)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
