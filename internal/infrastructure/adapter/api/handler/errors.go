package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
)

// statusFor maps a domain error onto its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrAccountNotFound), errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict
	case errors.Is(err, errs.ErrIdempotencyKeyMismatch):
		return http.StatusUnprocessableEntity
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the client-facing message; server faults never leak their cause
func messageFor(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return "Internal server error"
	case http.StatusNotFound:
		return "Account not found"
	case http.StatusPaymentRequired:
		return "Insufficient credits"
	default:
		return err.Error()
	}
}

// respondError writes the standard error body and logs server-side faults
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
	}
	_ = c.Error(err)

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: messageFor(err, status),
	})
}

// respondBindingError writes a 400 for a request that failed binding or validation
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeInvalidRequest,
		Message: "Invalid request format",
		Details: dto.ValidationDetails(err),
	})
}
