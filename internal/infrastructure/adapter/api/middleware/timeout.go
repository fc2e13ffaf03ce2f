package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// TimeoutFunc derives a bounded context, e.g. database.Manager.WithTimeout
type TimeoutFunc func(ctx context.Context) (context.Context, context.CancelFunc)

// QueryTimeout bounds every store call made while serving the request
func QueryTimeout(withTimeout TimeoutFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := withTimeout(c.Request.Context())
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
