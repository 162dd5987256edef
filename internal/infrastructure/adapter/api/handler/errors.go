package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
)

// ErrorResponder turns domain errors into HTTP responses
type ErrorResponder struct {
	logger   coreport.Logger
	topUpURL string
}

// NewErrorResponder creates an ErrorResponder; topUpURL is shown with insufficient balance rejections
func NewErrorResponder(logger coreport.Logger, topUpURL string) *ErrorResponder {
	return &ErrorResponder{logger: logger, topUpURL: topUpURL}
}

// Respond writes the status and body for err and records it on the gin context
func (r *ErrorResponder) Respond(c *gin.Context, err error) {
	_ = c.Error(err)

	status, body := r.describe(err)
	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"error": err.Error(),
			"path":  c.FullPath(),
		}
		var purchaseErr *domainerr.PurchaseError
		if errors.As(err, &purchaseErr) {
			for k, v := range purchaseErr.LogFields() {
				fields[k] = v
			}
		}
		r.logger.Error("Request failed with server error", fields)
	}

	c.AbortWithStatusJSON(status, body)
}

// BadRequest rejects a malformed body or parameter
func (r *ErrorResponder) BadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

func (r *ErrorResponder) describe(err error) (int, dto.ErrorResponse) {
	body := dto.ErrorResponse{Code: domainerr.ErrorCode(err), Message: err.Error()}

	switch {
	case errors.Is(err, domainerr.ErrCriticalCompensation):
		body.Message = "Your order could not be recorded and the refund failed. Please contact support."
		return http.StatusInternalServerError, body
	case errors.Is(err, domainerr.ErrPurchaseFailed):
		body.Message = "Your order could not be recorded. Your balance has been restored."
		return http.StatusInternalServerError, body
	case domainerr.IsInsufficientBalanceError(err):
		body.Message = "Insufficient balance. Please top up your wallet."
		var insufficient *domainerr.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			available := insufficient.Available
			body.Balance = &available
		}
		body.TopUpURL = r.topUpURL
		return http.StatusPaymentRequired, body
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, body
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, body
	case domainerr.IsConflictError(err):
		return http.StatusConflict, body
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized, body
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden, body
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		body.Message = "Service temporarily unavailable"
		return http.StatusServiceUnavailable, body
	default:
		body.Code = domainerr.CodeInternalServer
		body.Message = "Internal server error"
		return http.StatusInternalServerError, body
	}
}
