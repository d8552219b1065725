package ratelim

import (
	"net/http"
	"sync"
	"time"

	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

const maxIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter structure
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}
	go rl.evictLoop()
	return rl
}

// Get or create a rate limiter for an IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		// 5 requests per second, burst of 10
		v = &visitor{limiter: rate.NewLimiter(5, 10)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// evictIdle drops entries not seen within the idle window. An address that
// keeps sending requests keeps its bucket; the window only clears out
// visitors that went away.
func (rl *RateLimiter) evictIdle(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.evictIdle(maxIdle)
	}
}

// Limit enforces per-IP rate limiting on a handler.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		limiter := rl.getLimiter(r.RemoteAddr)
		if !limiter.Allow() {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		next(w, r, ps)
	}
}
