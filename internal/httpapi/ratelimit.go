package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter rate-limits per client address. Entries idle past Sweep's
// cutoff are dropped.
type ClientLimiter struct {
	mu  sync.Mutex
	m   map[string]*clientEntry
	r   rate.Limit
	b   int
	now func() time.Time
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		m:   make(map[string]*clientEntry),
		r:   rate.Limit(reqPerSec),
		b:   burst,
		now: time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(client string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if e, ok := cl.m[client]; ok {
		e.lastSeen = now
		return e.lim
	}
	e := &clientEntry{lim: rate.NewLimiter(cl.r, cl.b), lastSeen: now}
	cl.m[client] = e
	return e.lim
}

func (cl *ClientLimiter) Allow(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		host = "_"
	}
	return cl.limiterFor(host).AllowN(cl.now(), 1)
}

// Sweep drops clients not seen for idle and returns how many were dropped.
func (cl *ClientLimiter) Sweep(idle time.Duration) int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-idle)
	n := 0
	for client, e := range cl.m {
		if e.lastSeen.Before(cutoff) {
			delete(cl.m, client)
			n++
		}
	}
	return n
}

func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.m)
}

// RateLimit rejects requests over the client's budget with 429. A nil limiter
// lets everything through.
func RateLimit(cl *ClientLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		if cl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cl.Allow(r) {
				w.Header().Set("Retry-After", "1")
				WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
