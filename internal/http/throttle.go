package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lucasvieira94/nola-god-level/internal/auth"
	rl "github.com/lucasvieira94/nola-god-level/internal/http/rate_limiter"
	"go.uber.org/zap"
)

// SummaryThrottle guards the metered completion endpoint: a per-user token
// bucket for bursts, plus a Redis-backed daily quota. Quota checks fail open
// when Redis is unreachable; the burst limiter still applies.
func SummaryThrottle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r)

		if !rl.GetVisitor(strconv.Itoa(userID)).Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		if redisService != nil && summaryQuota > 0 {
			count, err := redisService.IncrSummaryCount(r.Context(), userID, time.Now())
			switch {
			case err != nil:
				log.Warn("summary quota check failed", zap.Error(err))
			case count > int64(summaryQuota):
				writeError(w, http.StatusTooManyRequests, "daily summary quota exceeded")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
