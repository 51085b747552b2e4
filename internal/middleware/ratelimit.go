// Package middleware provides HTTP middleware for the friendgraph API.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxClients caps the number of tracked client IPs.
const maxClients = 100_000

// staleAfter is how long an idle client keeps its limiter.
const staleAfter = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

// NewRateLimiter creates a RateLimiter allowing ratePerSec requests per second
// with the given burst. Idle clients are evicted until ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(ratePerSec),
		burst:   burst,
	}
	go rl.evictLoop(ctx)

	return rl
}

func (rl *RateLimiter) evictLoop(ctx context.Context) {
	ticker := time.NewTicker(staleAfter / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, cl := range rl.clients {
				if now.Sub(cl.lastSeen) > staleAfter {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// allow reports whether ip may proceed. ok is false when the client table is full.
func (rl *RateLimiter) allow(ip string) (allowed, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, exists := rl.clients[ip]
	if !exists {
		if len(rl.clients) >= maxClients {
			return false, false
		}

		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}

	cl.lastSeen = time.Now()

	return cl.limiter.Allow(), true
}

// Handler returns Gin middleware that rejects clients over their rate.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Proxy headers are not trusted (SetTrustedProxies(nil)), so this is the peer address.
		allowed, ok := rl.allow(c.ClientIP())
		if !ok {
			respondError(c, http.StatusTooManyRequests, "rate_limited", "too many clients")

			return
		}

		if !allowed {
			respondError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")

			return
		}

		c.Next()
	}
}
