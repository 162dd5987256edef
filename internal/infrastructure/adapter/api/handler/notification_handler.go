package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
)

// NotificationHandler handles inboxes and admin messaging
type NotificationHandler struct {
	notifications usecase.NotificationUseCase
	errors        *ErrorResponder
	logger        coreport.Logger
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(notifications usecase.NotificationUseCase, errors *ErrorResponder, logger coreport.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, errors: errors, logger: logger}
}

// Inbox handles GET /me/notifications
func (h *NotificationHandler) Inbox(c *gin.Context) {
	ctx := c.Request.Context()
	accountID := middleware.AccountID(c)

	notifications, err := h.notifications.List(ctx, accountID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	unread, err := h.notifications.UnreadCount(ctx, accountID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewInboxResponse(notifications, unread))
}

// MarkRead handles POST /me/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Request.Context(), middleware.AccountID(c), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Send handles POST /admin/notifications
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	n, err := h.notifications.Send(c.Request.Context(), req.AccountID, req.Title, req.Message)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewNotificationResponse(n))
}

// Announce handles POST /admin/announcements
func (h *NotificationHandler) Announce(c *gin.Context) {
	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	delivered, err := h.notifications.Broadcast(c.Request.Context(), req.Title, req.Message)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	h.logger.Info("Announcement delivered", map[string]any{
		"delivered": delivered,
		"admin_id":  middleware.AccountID(c),
	})
	c.JSON(http.StatusOK, dto.AnnouncementResponse{Delivered: delivered})
}
