package order

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/boltstore"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/logger"
	mcore "github.com/atgamehub/storefront/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC)

// brokenInbox fails every notification write
type brokenInbox struct {
	persistence.NotificationRepository
}

func (brokenInbox) Create(context.Context, *entity.Notification) error {
	return errors.New("disk full")
}

type inboxFailingUnitOfWork struct {
	*boltstore.UnitOfWork
}

func (inboxFailingUnitOfWork) GetNotificationRepository(context.Context) persistence.NotificationRepository {
	return brokenInbox{}
}

type env struct {
	ctx           context.Context
	uow           *boltstore.UnitOfWork
	orders        *boltstore.OrderRepository
	notifications *boltstore.NotificationRepository
	useCase       *OrderUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(now).Maybe()
	log := logger.NewNoopLogger()

	store, err := boltstore.Open(filepath.Join(t.TempDir(), "orders.db"), tp, log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	uow := boltstore.NewUnitOfWork(store)
	e := &env{
		ctx:           context.Background(),
		uow:           uow,
		orders:        boltstore.NewOrderRepository(store),
		notifications: boltstore.NewNotificationRepository(store),
		useCase:       NewOrderUseCase(uow, tp, log),
	}

	for i, id := range []string{"ORDER001", "ORDER002"} {
		require.NoError(t, e.orders.Create(e.ctx, &entity.Order{
			ID:        id,
			AccountID: "acc-1",
			ItemName:  "86 Diamonds",
			Price:     2400,
			Status:    entity.OrderPending,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}
	return e
}

func TestComplete(t *testing.T) {
	e := newEnv(t)

	order, err := e.useCase.Complete(e.ctx, "ORDER001")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)

	stored, err := e.orders.GetByID(e.ctx, "ORDER001")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, stored.Status)

	inbox, err := e.notifications.ListByAccount(e.ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "ORDER001", inbox[0].OrderID)
	assert.Contains(t, inbox[0].Message, "86 Diamonds")
	assert.Contains(t, inbox[0].Message, "2,400 Ks")
	assert.False(t, inbox[0].Read)
}

func TestCompleteTwiceIsRefused(t *testing.T) {
	e := newEnv(t)

	_, err := e.useCase.Complete(e.ctx, "ORDER001")
	require.NoError(t, err)
	_, err = e.useCase.Complete(e.ctx, "ORDER001")
	assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	inbox, err := e.notifications.ListByAccount(e.ctx, "acc-1")
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
}

func TestCompleteUnknownOrder(t *testing.T) {
	e := newEnv(t)

	_, err := e.useCase.Complete(e.ctx, "NOPE0000")

	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestCompleteIsAtomic(t *testing.T) {
	e := newEnv(t)
	e.useCase.uow = inboxFailingUnitOfWork{UnitOfWork: e.uow}

	_, err := e.useCase.Complete(e.ctx, "ORDER002")
	require.Error(t, err)

	stored, err := e.orders.GetByID(e.ctx, "ORDER002")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, stored.Status)
	assert.Nil(t, stored.CompletedAt)

	inbox, err := e.notifications.ListByAccount(e.ctx, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestListOrders(t *testing.T) {
	e := newEnv(t)
	_, err := e.useCase.Complete(e.ctx, "ORDER001")
	require.NoError(t, err)

	all, err := e.useCase.ListOrders(e.ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ORDER002", all[0].ID)

	pending, err := e.useCase.ListOrders(e.ctx, entity.OrderPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "ORDER002", pending[0].ID)

	_, err = e.useCase.ListOrders(e.ctx, "shipped")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	mine, err := e.useCase.ListByAccount(e.ctx, "acc-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = e.useCase.ListByAccount(e.ctx, "")
	assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
}
