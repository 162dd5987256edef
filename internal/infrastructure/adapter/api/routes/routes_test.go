package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atgamehub/storefront/internal/domain/entity"
	domainerr "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/handler"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/logger"
	mockusecase "github.com/atgamehub/storefront/mocks/port/usecase"
)

type testServer struct {
	router        *gin.Engine
	auth          *middleware.Authenticator
	catalog       *mockusecase.MockCatalogUseCase
	accounts      *mockusecase.MockAccountUseCase
	purchases     *mockusecase.MockPurchaseUseCase
	reconciler    *mockusecase.MockReconcileUseCase
	orders        *mockusecase.MockOrderUseCase
	topups        *mockusecase.MockTopUpUseCase
	notifications *mockusecase.MockNotificationUseCase
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		router:        gin.New(),
		auth:          middleware.NewAuthenticator("test-secret", ""),
		catalog:       mockusecase.NewMockCatalogUseCase(t),
		accounts:      mockusecase.NewMockAccountUseCase(t),
		purchases:     mockusecase.NewMockPurchaseUseCase(t),
		reconciler:    mockusecase.NewMockReconcileUseCase(t),
		orders:        mockusecase.NewMockOrderUseCase(t),
		topups:        mockusecase.NewMockTopUpUseCase(t),
		notifications: mockusecase.NewMockNotificationUseCase(t),
	}

	log := logger.NewNoopLogger()
	errs := handler.NewErrorResponder(log, "https://atg.example/topup")

	SetupMiddlewares(s.router, log, []string{"*"})
	SetupRoutes(s.router, s.auth, Handlers{
		Health:       handler.NewHealthHandler(nil),
		Catalog:      handler.NewCatalogHandler(s.catalog, errs, log),
		Account:      handler.NewAccountHandler(s.accounts, errs, log),
		Purchase:     handler.NewPurchaseHandler(s.purchases, s.reconciler, errs, log),
		Order:        handler.NewOrderHandler(s.orders, errs, log),
		TopUp:        handler.NewTopUpHandler(s.topups, errs, log),
		Notification: handler.NewNotificationHandler(s.notifications, errs, log),
	})
	return s
}

func (s *testServer) token(t *testing.T, subject string, admin bool) string {
	token, err := s.auth.IssueToken(subject, admin, time.Hour)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:        "K7Q2ZP",
		AccountID: "user-1",
		Username:  "Aung",
		LineID:    "mlbb",
		ItemID:    "mlbb-dia-86",
		ItemName:  "86 Diamonds",
		UnitPrice: 5200,
		Quantity:  1,
		Price:     5200,
		PlayerID:  "12345678",
		ServerID:  "1234",
		Status:    entity.OrderPending,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestHealthAndCatalogArePublic(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	s.catalog.EXPECT().Items(mock.Anything, "mlbb", "Passes").Return([]usecase.ItemView{
		{Item: entity.Item{ID: "mlbb-wdp", LineID: "mlbb", Category: "Passes", Price: 6500}, FormattedPrice: "6,500 Ks"},
	}, nil)

	w = s.do(http.MethodGet, "/catalog/lines/mlbb/items?category=Passes", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"mlbb-wdp"`)
	assert.Contains(t, w.Body.String(), `"formattedPrice":"6,500 Ks"`)
}

func TestUnknownLineIsNotFound(t *testing.T) {
	s := newTestServer(t)
	s.catalog.EXPECT().Items(mock.Anything, "nope", "").Return(nil, domainerr.ErrLineNotFound)

	w := s.do(http.MethodGet, "/catalog/lines/nope/items", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPurchase(t *testing.T) {
	t.Run("places order with idempotency key", func(t *testing.T) {
		s := newTestServer(t)
		s.purchases.EXPECT().Purchase(mock.Anything, usecase.PurchaseRequest{
			AccountID: "user-1",
			ItemID:    "mlbb-dia-86",
			Quantity:  1,
			PlayerID:  "12345678",
			ServerID:  "1234",
			RequestID: "req-1",
		}).Return(sampleOrder(), nil)

		w := s.do(http.MethodPost, "/purchases", s.token(t, "user-1", false),
			`{"itemId":"mlbb-dia-86","quantity":1,"playerId":"12345678","serverId":"1234"}`,
			middleware.IdempotencyKeyHeader, "req-1")

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.PurchaseResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "K7Q2ZP", resp.Order.ID)
		assert.Equal(t, int64(5200), resp.Order.Price)
		assert.Equal(t, "pending", resp.Order.Status)
	})

	t.Run("insufficient balance returns 402 with balance and top-up link", func(t *testing.T) {
		s := newTestServer(t)
		s.purchases.EXPECT().Purchase(mock.Anything, mock.Anything).
			Return(nil, domainerr.NewInsufficientBalanceError("user-1", 5200, 1200))

		w := s.do(http.MethodPost, "/purchases", s.token(t, "user-1", false), `{"itemId":"mlbb-dia-86"}`)

		require.Equal(t, http.StatusPaymentRequired, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeInsufficientBalance, resp.Code)
		require.NotNil(t, resp.Balance)
		assert.Equal(t, int64(1200), *resp.Balance)
		assert.Equal(t, "https://atg.example/topup", resp.TopUpURL)
	})

	t.Run("missing item id is rejected before the use case", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/purchases", s.token(t, "user-1", false), `{"quantity":2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/purchases", "", `{"itemId":"mlbb-dia-86"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRegisterUsesTokenSubject(t *testing.T) {
	s := newTestServer(t)
	account := entity.RestoreAccount("user-9", "Mya", "mya@example.com", 0, 0, 0, time.Now(), time.Now())
	s.accounts.EXPECT().Register(mock.Anything, "user-9", "Mya", "mya@example.com").Return(account, nil)

	w := s.do(http.MethodPost, "/accounts", s.token(t, "user-9", false),
		`{"displayName":"Mya","email":"mya@example.com"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"accountId":"user-9"`)
}

func TestDuplicateDisplayNameConflicts(t *testing.T) {
	s := newTestServer(t)
	s.accounts.EXPECT().Register(mock.Anything, "user-9", "Mya", "").Return(nil, domainerr.ErrDuplicateDisplayName)

	w := s.do(http.MethodPost, "/accounts", s.token(t, "user-9", false), `{"displayName":"Mya"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInbox(t *testing.T) {
	s := newTestServer(t)
	s.notifications.EXPECT().List(mock.Anything, "user-1").Return([]*entity.Notification{
		{ID: "n1", AccountID: "user-1", Title: "Order completed", Message: "K7Q2ZP", OrderID: "K7Q2ZP"},
	}, nil)
	s.notifications.EXPECT().UnreadCount(mock.Anything, "user-1").Return(int64(1), nil)

	w := s.do(http.MethodGet, "/me/notifications", s.token(t, "user-1", false), "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.InboxResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Unread)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "K7Q2ZP", resp.Notifications[0].OrderID)
}

func TestMarkReadOfForeignNotification(t *testing.T) {
	s := newTestServer(t)
	s.notifications.EXPECT().MarkRead(mock.Anything, "user-1", "n2").Return(domainerr.ErrNotificationNotFound)

	w := s.do(http.MethodPost, "/me/notifications/n2/read", s.token(t, "user-1", false), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	t.Run("non-admin is forbidden", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodGet, "/admin/orders", s.token(t, "user-1", false), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("list pending orders", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.EXPECT().ListOrders(mock.Anything, entity.OrderPending).Return([]*entity.Order{sampleOrder()}, nil)

		w := s.do(http.MethodGet, "/admin/orders?status=pending", s.token(t, "admin", true), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"orderId":"K7Q2ZP"`)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodGet, "/admin/topups?status=lost", s.token(t, "admin", true), "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("completing twice conflicts", func(t *testing.T) {
		s := newTestServer(t)
		s.orders.EXPECT().Complete(mock.Anything, "K7Q2ZP").Return(nil, domainerr.ErrInvalidStatusTransition)

		w := s.do(http.MethodPost, "/admin/orders/K7Q2ZP/complete", s.token(t, "admin", true), "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("approve records reviewer", func(t *testing.T) {
		s := newTestServer(t)
		reviewed := time.Now()
		s.topups.EXPECT().Approve(mock.Anything, "t1", "admin").Return(&entity.TopUpRequest{
			ID: "t1", AccountID: "user-1", Amount: 10000, Status: entity.TopUpApproved,
			ReviewedAt: &reviewed, ReviewedBy: "admin", BonusCoins: 250,
		}, nil)

		w := s.do(http.MethodPost, "/admin/topups/t1/approve", s.token(t, "admin", true), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"approved"`)
		assert.Contains(t, w.Body.String(), `"bonusCoins":250`)
	})

	t.Run("announcement reports deliveries", func(t *testing.T) {
		s := newTestServer(t)
		s.notifications.EXPECT().Broadcast(mock.Anything, "Maintenance", "Back at 9").Return(42, nil)

		w := s.do(http.MethodPost, "/admin/announcements", s.token(t, "admin", true),
			`{"title":"Maintenance","message":"Back at 9"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"delivered":42}`, w.Body.String())
	})

	t.Run("reconcile returns the report", func(t *testing.T) {
		s := newTestServer(t)
		s.reconciler.EXPECT().Reconcile(mock.Anything).Return(&usecase.ReconcileReport{Scanned: 2, Compensated: 1, Recorded: 1}, nil)

		w := s.do(http.MethodPost, "/admin/reconcile", s.token(t, "admin", true), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"scanned":2,"recorded":1,"compensated":1,"abandoned":0,"failed":0}`, w.Body.String())
	})

	t.Run("image upsert", func(t *testing.T) {
		s := newTestServer(t)
		s.catalog.EXPECT().SetImage(mock.Anything, "mlbb", "https://cdn.example/mlbb.png").Return(nil)

		w := s.do(http.MethodPut, "/admin/images/mlbb", s.token(t, "admin", true), `{"url":"https://cdn.example/mlbb.png"}`)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
