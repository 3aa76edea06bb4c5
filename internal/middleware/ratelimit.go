package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Default per-client allowance: one request per second on average, bursts of 60.
const (
	DefaultRequestsPerSecond = 1.0
	DefaultBurst             = 60
	clientIdleTTL            = 10 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter hands out one token bucket per client IP and forgets idle clients.
type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		ttl:     clientIdleTTL,
	}
}

func (l *clientLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Idle clients are swept at most once per ttl.
	if now.Sub(l.lastSweep) >= l.ttl {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) > l.ttl {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimiter limits requests per client IP with a token bucket.
//
// Behavior:
//   - Each client IP gets rps tokens per second and may burst up to burst requests.
//   - Non-positive values fall back to DefaultRequestsPerSecond / DefaultBurst.
//   - When the bucket is empty, responds 429 Too Many Requests with an ErrorResponse body.
func RateLimiter(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	lim := newClientLimiter(rps, burst)

	return func(c *gin.Context) {
		if !lim.allow(c.ClientIP(), time.Now()) {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
