package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
)

// NewRateLimiter builds an in-memory limiter from a formatted rate such as "60-M"
func NewRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit throttles requests per account, falling back to the client IP when no account is sent
func RateLimit(limiterInstance *limiter.Limiter, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// trimmed the same way handlers read the account
		key := strings.TrimSpace(c.GetHeader("X-Account-ID"))
		if key == "" {
			key = "ip:" + c.ClientIP()
		} else {
			key = "account:" + key
		}

		limitCtx, err := limiterInstance.Get(c.Request.Context(), key)
		if err != nil {
			// fail open; the ledger stays correct without throttling
			logger.Warn("Rate limiter unavailable", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limitCtx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limitCtx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(limitCtx.Reset, 10))

		if limitCtx.Reached {
			logger.Warn("Rate limit reached", map[string]any{
				"key":        key,
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    errs.CodeTooManyRequests,
				Message: "Too many requests",
			})
			return
		}

		c.Next()
	}
}
