package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atgamehub/storefront/internal/domain/entity"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
)

// PurchaseHandler handles purchases and the reconciliation trigger
type PurchaseHandler struct {
	purchases  usecase.PurchaseUseCase
	reconciler usecase.ReconcileUseCase
	errors     *ErrorResponder
	logger     coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(
	purchases usecase.PurchaseUseCase,
	reconciler usecase.ReconcileUseCase,
	errors *ErrorResponder,
	logger coreport.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchases:  purchases,
		reconciler: reconciler,
		errors:     errors,
		logger:     logger,
	}
}

// Purchase handles POST /purchases
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	order, err := h.purchases.Purchase(c.Request.Context(), usecase.PurchaseRequest{
		AccountID: middleware.AccountID(c),
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		PlayerID:  req.PlayerID,
		ServerID:  req.ServerID,
		RequestID: c.GetHeader(middleware.IdempotencyKeyHeader),
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{
		Order:   dto.NewOrderResponse(order),
		Message: "Order " + order.ID + " placed. " + entity.FormatAmount(order.Price) + " was deducted from your wallet.",
	})
}

// Reconcile handles POST /admin/reconcile
func (h *PurchaseHandler) Reconcile(c *gin.Context) {
	report, err := h.reconciler.Reconcile(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
