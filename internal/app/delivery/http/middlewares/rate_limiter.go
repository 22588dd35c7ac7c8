package middlewares

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per client IP token bucket, used in front of login.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*ipLimiter
	mu        sync.Mutex
	every     time.Duration
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows requestsPerMinute sustained requests per IP with the
// given burst.
func NewRateLimiter(log *zap.Logger, requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = requestsPerMinute
	}
	return &RateLimiter{
		log:      log,
		limiters: make(map[string]*ipLimiter),
		every:    time.Minute / time.Duration(requestsPerMinute),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.GetClientIP(r)
		limiter := rl.limiterFor(ip)

		if !limiter.Allow() {
			requestID := utils.GetRequestID(r.Context())
			utils.LogSecurityEvent(rl.log, "login_rate_limited", requestID, "medium",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(rl.every.Seconds())+1))
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyLoginAttempts(fmt.Errorf("client %s exceeded login rate", ip)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > limiterIdleTTL {
		for key, entry := range rl.limiters {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(rl.limiters, key)
			}
		}
		rl.lastSweep = now
	}

	entry, exists := rl.limiters[ip]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Every(rl.every), rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// GlobalRateLimit caps every client at MaxRequests per window, answering
// with the usual error envelope.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
