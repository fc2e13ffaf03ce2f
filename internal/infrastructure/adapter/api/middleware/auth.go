package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
)

// RequireAccount rejects requests that arrive without the X-Account-ID set by the auth gateway
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("X-Account-ID")) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    errs.CodeUnauthorized,
				Message: "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
