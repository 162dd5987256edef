package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/handler"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Health       *handler.HealthHandler
	Catalog      *handler.CatalogHandler
	Account      *handler.AccountHandler
	Purchase     *handler.PurchaseHandler
	Order        *handler.OrderHandler
	TopUp        *handler.TopUpHandler
	Notification *handler.NotificationHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, auth *middleware.Authenticator, h Handlers) {
	router.GET("/healthz", h.Health.Health)

	// Public catalog
	catalogRoutes := router.Group("/catalog")
	{
		catalogRoutes.GET("/lines", h.Catalog.Lines)
		catalogRoutes.GET("/lines/:lineId/items", h.Catalog.Items)
	}

	// Authenticated buyer routes
	authed := router.Group("", auth.RequireAuth())
	{
		authed.POST("/accounts", h.Account.Register)
		authed.POST("/purchases", h.Purchase.Purchase)
		authed.POST("/topups", h.TopUp.Submit)

		me := authed.Group("/me")
		me.GET("", h.Account.Me)
		me.GET("/orders", h.Order.MyOrders)
		me.GET("/topups", h.TopUp.MyTopUps)
		me.GET("/notifications", h.Notification.Inbox)
		me.POST("/notifications/:id/read", h.Notification.MarkRead)
	}

	// Admin routes
	admin := router.Group("/admin", auth.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("/orders", h.Order.List)
		admin.POST("/orders/:orderId/complete", h.Order.Complete)

		admin.GET("/topups", h.TopUp.List)
		admin.POST("/topups/:requestId/approve", h.TopUp.Approve)
		admin.POST("/topups/:requestId/reject", h.TopUp.Reject)

		admin.GET("/accounts", h.Account.List)
		admin.POST("/accounts/:accountId/balance", h.Account.AdjustBalance)

		admin.POST("/notifications", h.Notification.Send)
		admin.POST("/announcements", h.Notification.Announce)

		admin.GET("/images", h.Catalog.Images)
		admin.PUT("/images/:key", h.Catalog.SetImage)
		admin.DELETE("/images/:key", h.Catalog.DeleteImage)

		admin.POST("/reconcile", h.Purchase.Reconcile)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Logger runs first so the request id is set before a panic can be recovered
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
