package handler

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/finworks/payment-portal/pkg/logger"
	"github.com/finworks/payment-portal/pkg/ratelimit"
)

// RateLimiters groups the per-category limiters. Categories are independent:
// exhausting the creation budget does not block general reads.
type RateLimiters struct {
	Creation *ratelimit.Limiter
	General  *ratelimit.Limiter
}

// NewRateLimiters wires the default category budgets over one store
func NewRateLimiters(store ratelimit.Store) *RateLimiters {
	return &RateLimiters{
		Creation: ratelimit.NewLimiter(store, "payment-creation", 20, time.Minute),
		General:  ratelimit.NewLimiter(store, "general", 120, time.Minute),
	}
}

// identifier prefers the authenticated email, falling back to the client IP
func identifier(r *http.Request) string {
	if claims := ClaimsFromContext(r.Context()); claims != nil && claims.Email != "" {
		return claims.Email
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware enforces one limiter on a handler
func RateLimitMiddleware(limiter *ratelimit.Limiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := identifier(r)

		allowed, remaining, resetTime, err := limiter.Allow(r.Context(), id)
		if err != nil {
			// On limiter failure, let the request through but log it
			logger.Error(r.Context()).Err(err).Str("identifier", id).Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.Limit()))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime.Unix()))

		if !allowed {
			logger.Warn(r.Context()).
				Str("identifier", id).
				Int("limit", limiter.Limit()).
				Msg("Rate limit exceeded")
			respondJSON(w, http.StatusTooManyRequests, failure("rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
