package web

import (
	"sync"
	"time"

	"github.com/arim/yt-utility-go/internal/config"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const visitorIdleEviction = 10 * time.Minute

// rateLimiter keeps one token bucket per client IP. Buckets idle past the
// eviction window are swept out lazily on later requests.
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(requestsPerMinute int) *rateLimiter {
	return &rateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Limit(float64(requestsPerMinute) / 60),
		burst:     requestsPerMinute,
		lastSweep: time.Now(),
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > visitorIdleEviction {
		for addr, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorIdleEviction {
				delete(rl.visitors, addr)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.Allow()
}

// RateLimit rejects clients that exceed the per-minute request budget with a
// fragment the front-end can inject like any other result.
func RateLimit(cfg config.RateLimitConfig) fiber.Handler {
	rl := newRateLimiter(cfg.RequestsPerMinute)

	return func(c *fiber.Ctx) error {
		if rl.allow(c.IP()) {
			return c.Next()
		}

		c.Set(fiber.HeaderRetryAfter, "60")
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Status(fiber.StatusTooManyRequests).
			SendString(`<div class="result-card error"><div class="result-header"><h3 class="result-title">Too Many Requests</h3></div><div class="result-content"><p>You have made too many requests. Please wait a minute and try again.</p></div></div>`)
	}
}
