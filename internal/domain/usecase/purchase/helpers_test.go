package purchase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/atgamehub/storefront/internal/domain/usecase/account"
	"github.com/atgamehub/storefront/internal/domain/usecase/purchase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/boltstore"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/logger"
	realtime "github.com/atgamehub/storefront/internal/infrastructure/adapter/time"
	mmsg "github.com/atgamehub/storefront/mocks/port/messaging"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unavailable")

// failingOrders refuses every order write
type failingOrders struct {
	persistence.OrderRepository
}

func (failingOrders) Create(context.Context, *entity.Order) error {
	return errStoreDown
}

// failingCredits refuses every balance adjustment
type failingCredits struct {
	persistence.AccountRepository
}

func (failingCredits) AdjustBalance(context.Context, string, int64) (*entity.Account, error) {
	return nil, errStoreDown
}

// frozenIntents accepts new intents but refuses to move them on
type frozenIntents struct {
	persistence.IntentRepository
}

func (frozenIntents) UpdateState(context.Context, *entity.PurchaseIntent, entity.IntentState) error {
	return errStoreDown
}

// snapshotIntents lists the open intents captured earlier, like a sweep that
// read the intent table before another sweep settled it
type snapshotIntents struct {
	persistence.IntentRepository
	open []*entity.PurchaseIntent
}

func (s snapshotIntents) ListOpen(context.Context, time.Time) ([]*entity.PurchaseIntent, error) {
	return s.open, nil
}

// sweepingOrders runs a sweep while the order write is in flight, then fails it
type sweepingOrders struct {
	persistence.OrderRepository
	sweep func(ctx context.Context)
}

func (o sweepingOrders) Create(ctx context.Context, _ *entity.Order) error {
	o.sweep(ctx)
	return errStoreDown
}

// faultyUnitOfWork swaps in broken repositories on top of a working bolt unit of work
type faultyUnitOfWork struct {
	*boltstore.UnitOfWork
	orders   persistence.OrderRepository
	accounts persistence.AccountRepository
	intents  persistence.IntentRepository
}

func (u *faultyUnitOfWork) GetIntentRepository(ctx context.Context) persistence.IntentRepository {
	if u.intents != nil {
		return u.intents
	}
	return u.UnitOfWork.GetIntentRepository(ctx)
}

func (u *faultyUnitOfWork) GetOrderRepository(ctx context.Context) persistence.OrderRepository {
	if u.orders != nil {
		return u.orders
	}
	return u.UnitOfWork.GetOrderRepository(ctx)
}

func (u *faultyUnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	if u.accounts != nil {
		return u.accounts
	}
	return u.UnitOfWork.GetAccountRepository(ctx)
}

type fixture struct {
	ctx          context.Context
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	accountRepo  *boltstore.AccountRepository
	orderRepo    *boltstore.OrderRepository
	intentRepo   *boltstore.IntentRepository
	uow          *faultyUnitOfWork
	accounts     *account.AccountUseCase
	broadcaster  *mmsg.MockBroadcaster
	service      *purchase.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tp := realtime.NewRealTimeProvider()
	log := logger.NewNoopLogger()

	store, err := boltstore.Open(filepath.Join(t.TempDir(), "storefront.db"), tp, log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	accountRepo := boltstore.NewAccountRepository(store)
	policy := account.RetryPolicy{MaxRetries: 10, Interval: time.Millisecond, MaxInterval: 5 * time.Millisecond, JitterFactor: 0.5}
	accounts := account.NewAccountUseCase(accountRepo, tp, log, policy)
	uow := &faultyUnitOfWork{UnitOfWork: boltstore.NewUnitOfWork(store)}
	broadcaster := mmsg.NewMockBroadcaster(t)

	return &fixture{
		ctx:          context.Background(),
		timeProvider: tp,
		logger:       log,
		accountRepo:  accountRepo,
		orderRepo:    boltstore.NewOrderRepository(store),
		intentRepo:   boltstore.NewIntentRepository(store),
		uow:          uow,
		accounts:     accounts,
		broadcaster:  broadcaster,
		service:      purchase.NewPurchaseService(testCatalog(t), accounts, uow, broadcaster, tp, log),
	}
}

func testCatalog(t *testing.T) *entity.Catalog {
	t.Helper()
	catalog, err := entity.NewCatalog(
		[]entity.ProductLine{
			{ID: "mlbb", Name: "Mobile Legends", Kind: entity.KindGame, RequiresPlayerID: true, RequiresServerID: true},
			{ID: "pubg", Name: "PUBG Mobile", Kind: entity.KindGame, RequiresPlayerID: true},
		},
		[]entity.Item{
			{ID: "mlbb-86", LineID: "mlbb", Category: "diamonds", Name: "86 Diamonds", Price: 2400},
			{ID: "pubg-60", LineID: "pubg", Category: "uc", Name: "60 UC", Price: 1500, Multiple: true},
		},
	)
	require.NoError(t, err)
	return catalog
}

func (f *fixture) seedAccount(t *testing.T, id string, balance int64) {
	t.Helper()
	now := f.timeProvider.Now()
	require.NoError(t, f.accountRepo.Create(f.ctx, entity.RestoreAccount(id, "user_"+id, "", balance, 0, 0, now, now)))
}

func (f *fixture) balance(t *testing.T, id string) int64 {
	t.Helper()
	account, err := f.accountRepo.GetByID(f.ctx, id)
	require.NoError(t, err)
	return account.Balance()
}

func (f *fixture) orderCount(t *testing.T) int {
	t.Helper()
	orders, err := f.orderRepo.List(f.ctx, "")
	require.NoError(t, err)
	return len(orders)
}

// seedIntent stores an intent and walks it to state, backdated by age
func (f *fixture) seedIntent(t *testing.T, accountID, orderID string, amount int64, state entity.IntentState, age time.Duration) *entity.PurchaseIntent {
	t.Helper()
	then := f.timeProvider.Now().Add(-age)
	intent := &entity.PurchaseIntent{
		ID:        "intent-" + orderID,
		RequestID: "req-" + orderID,
		AccountID: accountID,
		OrderID:   orderID,
		Amount:    amount,
		State:     state,
		CreatedAt: then,
		UpdatedAt: then,
	}
	require.NoError(t, f.intentRepo.Create(f.ctx, intent))
	return intent
}

func (f *fixture) intentState(t *testing.T, requestID string) entity.IntentState {
	t.Helper()
	intent, err := f.intentRepo.GetByRequestID(f.ctx, requestID)
	require.NoError(t, err)
	return intent.State
}
