package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashit_ledger/internal/apperrors"
	"github.com/SscSPs/cashit_ledger/internal/core/domain"
	"github.com/SscSPs/cashit_ledger/internal/dto"
	"github.com/SscSPs/cashit_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// statusFor maps a classified ledger error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNoSession), errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrDeactivated), errors.Is(err, apperrors.ErrRoleMismatch):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrLookup):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondResult writes res, merging extra fields into the body on success.
func respondResult(c *gin.Context, okStatus int, res domain.Result, extra gin.H) {
	if !res.Success {
		status := statusFor(res.Err)
		if status == http.StatusInternalServerError {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Ledger operation failed", slog.Any("error", res.Err))
		}
		c.JSON(status, gin.H{"success": false, "message": res.Message})
		return
	}
	body := gin.H{"success": true, "message": res.Message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(okStatus, body)
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": dto.ValidationMessage(err)})
		return false
	}
	return true
}

// bindAmount parses a request amount and answers 400 on failure.
func bindAmount(c *gin.Context, raw string) (decimal.Decimal, bool) {
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.MessageOf(err)})
		return decimal.Zero, false
	}
	return amount, true
}
