package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
)

// AccountHandler handles registration, the caller's profile and account administration
type AccountHandler struct {
	accounts usecase.AccountUseCase
	errors   *ErrorResponder
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, errors *ErrorResponder, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, errors: errors, logger: logger}
}

// Register handles POST /accounts; the account id is the token subject
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), middleware.AccountID(c), req.DisplayName, req.Email)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// Me handles GET /me
func (h *AccountHandler) Me(c *gin.Context) {
	account, err := h.accounts.GetAccount(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// List handles GET /admin/accounts
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponses(accounts))
}

// AdjustBalance handles POST /admin/accounts/:accountId/balance
func (h *AccountHandler) AdjustBalance(c *gin.Context) {
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	accountID := c.Param("accountId")
	account, err := h.accounts.AdminAdjust(c.Request.Context(), accountID, req.Delta)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	h.logger.Info("Balance adjusted by admin", map[string]any{
		"account_id": accountID,
		"delta":      req.Delta,
		"admin_id":   middleware.AccountID(c),
		"balance":    account.Balance(),
	})
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}
