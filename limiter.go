package brochure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// loginRate allows a sustained five attempts per minute per IP.
	loginRate  = rate.Limit(5.0 / 60.0)
	loginBurst = 5
)

// loginLimiter rate-limits login attempts per client IP using a token
// bucket per address.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newLoginLimiter(limit rate.Limit, burst int) *loginLimiter {
	l := &loginLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
	}
	go l.cleanup()
	return l
}

// allow reports whether ip may attempt a login now and consumes a
// token if so.
func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.seen = time.Now()
	return v.limiter.Allow()
}

// cleanup drops buckets for addresses idle long enough to have fully
// refilled, keeping the map bounded.
func (l *loginLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-30 * time.Minute)
		l.mu.Lock()
		for ip, v := range l.visitors {
			if v.seen.Before(cutoff) {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}
