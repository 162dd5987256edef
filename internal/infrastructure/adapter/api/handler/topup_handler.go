package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atgamehub/storefront/internal/domain/entity"
	domainerr "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
)

// TopUpHandler handles wallet funding requests and their review
type TopUpHandler struct {
	topups usecase.TopUpUseCase
	errors *ErrorResponder
	logger coreport.Logger
}

// NewTopUpHandler creates a new top-up handler instance
func NewTopUpHandler(topups usecase.TopUpUseCase, errors *ErrorResponder, logger coreport.Logger) *TopUpHandler {
	return &TopUpHandler{topups: topups, errors: errors, logger: logger}
}

// Submit handles POST /topups
func (h *TopUpHandler) Submit(c *gin.Context) {
	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	request, err := h.topups.Submit(c.Request.Context(), middleware.AccountID(c), req.Amount, req.EvidenceURL)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTopUpResponse(request))
}

// MyTopUps handles GET /me/topups
func (h *TopUpHandler) MyTopUps(c *gin.Context) {
	requests, err := h.topups.ListByAccount(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTopUpResponses(requests))
}

// List handles GET /admin/topups?status=
func (h *TopUpHandler) List(c *gin.Context) {
	status := entity.TopUpStatus(c.Query("status"))
	switch status {
	case "", entity.TopUpPending, entity.TopUpApproved, entity.TopUpRejected:
	default:
		h.errors.Respond(c, fmt.Errorf("%w: unknown top-up status %q", domainerr.ErrInvalidRequest, status))
		return
	}

	requests, err := h.topups.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTopUpResponses(requests))
}

// Approve handles POST /admin/topups/:requestId/approve
func (h *TopUpHandler) Approve(c *gin.Context) {
	request, err := h.topups.Approve(c.Request.Context(), c.Param("requestId"), middleware.AccountID(c))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTopUpResponse(request))
}

// Reject handles POST /admin/topups/:requestId/reject
func (h *TopUpHandler) Reject(c *gin.Context) {
	request, err := h.topups.Reject(c.Request.Context(), c.Param("requestId"), middleware.AccountID(c))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTopUpResponse(request))
}
