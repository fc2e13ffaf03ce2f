package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// RequestIDHeader carries the request id in and out of the service
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLength caps client supplied ids before they reach the logs
const maxRequestIDLength = 128

// RequestID echoes the caller's X-Request-Id or generates one, and stores it in the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
