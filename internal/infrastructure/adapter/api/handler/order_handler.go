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

// OrderHandler handles order history and administration
type OrderHandler struct {
	orders usecase.OrderUseCase
	errors *ErrorResponder
	logger coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(orders usecase.OrderUseCase, errors *ErrorResponder, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, errors: errors, logger: logger}
}

// MyOrders handles GET /me/orders
func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.orders.ListByAccount(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// List handles GET /admin/orders?status=
func (h *OrderHandler) List(c *gin.Context) {
	status := entity.OrderStatus(c.Query("status"))
	switch status {
	case "", entity.OrderPending, entity.OrderCompleted, entity.OrderFailed:
	default:
		h.errors.Respond(c, fmt.Errorf("%w: unknown order status %q", domainerr.ErrInvalidRequest, status))
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), status)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Complete handles POST /admin/orders/:orderId/complete
func (h *OrderHandler) Complete(c *gin.Context) {
	order, err := h.orders.Complete(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	h.logger.Info("Order completed by admin", map[string]any{
		"order_id": order.ID,
		"admin_id": middleware.AccountID(c),
	})
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
