package middleware

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/GregMSThompson/budget-planner/internal/response"
	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

type rateLimitMiddleware struct {
	limiter         *rate.Limiter
	responseHandler response.ResponseHandler
}

// NewRateLimitMiddleware returns a single service-wide token bucket. There is
// no per-client keying since the API has no notion of users.
func NewRateLimitMiddleware(rps float64, burst int, rh response.ResponseHandler) *rateLimitMiddleware {
	return &rateLimitMiddleware{
		limiter:         rate.NewLimiter(rate.Limit(rps), burst),
		responseHandler: rh,
	}
}

func (m *rateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			logger.FromContext(r.Context()).Warn("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(1))
			m.responseHandler.WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
