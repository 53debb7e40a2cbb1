package http

import (
	"net/http"
	"strconv"
	"time"

	"darum/internal/domain"

	"github.com/gin-gonic/gin"
)

// enforceLoginRateLimit applies a per-client-IP counter to the login route.
// A limiter outage fails open unless configured otherwise.
func (s *Server) enforceLoginRateLimit(c *gin.Context) bool {
	if s.rateLimiter == nil || s.rateLimitRequests <= 0 {
		return true
	}
	key := "login:" + c.ClientIP()
	decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.rateLimitRequests, s.rateLimitWindow)
	if err != nil {
		if s.rateLimitFailClosed {
			writeFailure(c, http.StatusServiceUnavailable, statusError, "Rate limiter unavailable")
			return false
		}
		return true
	}
	setRateLimitHeaders(c, decision)
	if !decision.Allowed {
		retryAfter := int(time.Until(decision.ResetAt).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		writeFailure(c, http.StatusTooManyRequests, statusError, "Too many login attempts")
		return false
	}
	return true
}

func setRateLimitHeaders(c *gin.Context, decision domain.RateLimitDecision) {
	c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
	c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	c.Header("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
}
