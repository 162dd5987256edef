package purchase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/domain/usecase/purchase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mlbbRequest(accountID string) usecase.PurchaseRequest {
	return usecase.PurchaseRequest{
		AccountID: accountID,
		ItemID:    "mlbb-86",
		PlayerID:  "12345678",
		ServerID:  "2001",
	}
}

func TestPurchase_Success(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)

	var summary string
	f.broadcaster.EXPECT().Send(mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ context.Context, text string) { summary = text }).
		Return(nil).Once()

	req := mlbbRequest("acc-1")
	req.RequestID = "req-ok"
	order, err := f.service.Purchase(f.ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))
	assert.Equal(t, int64(2400), order.Price)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Len(t, order.ID, 8)
	assert.Equal(t, 1, f.orderCount(t))
	assert.Equal(t, entity.IntentRecorded, f.intentState(t, "req-ok"))

	stored, err := f.orderRepo.GetByID(f.ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2400), stored.Price)
	assert.Equal(t, "user_acc-1", stored.Username)

	assert.Contains(t, summary, order.ID)
	assert.Contains(t, summary, "86 Diamonds")
	assert.Contains(t, summary, "2,400 Ks")
	assert.Contains(t, summary, "12345678")
	assert.Contains(t, summary, "2001")
}

func TestPurchase_MultipleUnits(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

	order, err := f.service.Purchase(f.ctx, usecase.PurchaseRequest{
		AccountID: "acc-1",
		ItemID:    "pubg-60",
		Quantity:  3,
		PlayerID:  "5123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4500), order.Price)
	assert.Equal(t, int64(1500), order.UnitPrice)
	assert.Equal(t, "60 UC x3", order.ItemName)
	assert.Equal(t, int64(5500), f.balance(t, "acc-1"))
}

func TestPurchase_InsufficientBalance(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 1000)

	order, err := f.service.Purchase(f.ctx, mlbbRequest("acc-1"))

	assert.Nil(t, order)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	var insufficient *errs.InsufficientBalanceError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, int64(2400), insufficient.Required)
	assert.Equal(t, int64(1000), insufficient.Available)

	assert.Equal(t, int64(1000), f.balance(t, "acc-1"))
	assert.Equal(t, 0, f.orderCount(t))
}

func TestPurchase_MissingIdentifier(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)

	req := mlbbRequest("acc-1")
	req.PlayerID = ""
	_, err := f.service.Purchase(f.ctx, req)

	assert.ErrorIs(t, err, errs.ErrMissingIdentifier)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
	assert.Equal(t, 0, f.orderCount(t))
}

func TestPurchase_UnknownAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Purchase(f.ctx, mlbbRequest("ghost"))

	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestPurchase_RecordFailureIsCompensated(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 5000)
	f.uow.orders = failingOrders{}

	req := mlbbRequest("acc-1")
	req.RequestID = "req-fail"
	order, err := f.service.Purchase(f.ctx, req)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, errs.ErrPurchaseFailed)
	assert.NotErrorIs(t, err, errs.ErrCriticalCompensation)
	assert.Equal(t, errs.CodePurchaseFailed, errs.ErrorCode(err))

	var purchaseErr *errs.PurchaseError
	require.True(t, errors.As(err, &purchaseErr))
	assert.Equal(t, errs.StageRecord, purchaseErr.Stage)
	assert.False(t, purchaseErr.Critical())

	assert.Equal(t, int64(5000), f.balance(t, "acc-1"))
	assert.Equal(t, 0, f.orderCount(t))
	assert.Equal(t, entity.IntentCompensated, f.intentState(t, "req-fail"))
}

func TestPurchase_DebitRolledBackWhenIntentCannotAdvance(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 5000)
	f.uow.intents = frozenIntents{IntentRepository: f.intentRepo}

	req := mlbbRequest("acc-1")
	req.RequestID = "req-frozen"
	_, err := f.service.Purchase(f.ctx, req)

	var purchaseErr *errs.PurchaseError
	require.True(t, errors.As(err, &purchaseErr))
	assert.Equal(t, errs.StageDebit, purchaseErr.Stage)
	assert.ErrorIs(t, err, errStoreDown)

	assert.Equal(t, int64(5000), f.balance(t, "acc-1"))
	assert.Equal(t, 0, f.orderCount(t))
	assert.Equal(t, entity.IntentStarted, f.intentState(t, "req-frozen"))
}

func TestPurchase_SweepRefundDuringRecordIsNotRepeated(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 5000)
	sweeper := purchase.NewReconciler(f.uow, -time.Minute, f.timeProvider, f.logger)
	f.uow.orders = sweepingOrders{OrderRepository: f.orderRepo, sweep: func(ctx context.Context) {
		report, err := sweeper.Reconcile(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, report.Compensated)
	}}

	req := mlbbRequest("acc-1")
	req.RequestID = "req-swept"
	_, err := f.service.Purchase(f.ctx, req)

	assert.ErrorIs(t, err, errs.ErrPurchaseFailed)
	assert.NotErrorIs(t, err, errs.ErrCriticalCompensation)
	assert.Equal(t, int64(5000), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentCompensated, f.intentState(t, "req-swept"))
}

func TestPurchase_ReplayAfterBalanceSpent(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 2400)
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

	req := mlbbRequest("acc-1")
	req.RequestID = "req-all-in"
	first, err := f.service.Purchase(f.ctx, req)
	require.NoError(t, err)
	require.Equal(t, int64(0), f.balance(t, "acc-1"))

	replay, err := f.service.Purchase(f.ctx, req)

	require.NoError(t, err)
	assert.Equal(t, first.ID, replay.ID)
	assert.Equal(t, int64(0), f.balance(t, "acc-1"))
	assert.Equal(t, 1, f.orderCount(t))

	req.RequestID = "req-fresh"
	_, err = f.service.Purchase(f.ctx, req)
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
}

func TestPurchase_CompensationFailureIsCritical(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 5000)
	f.uow.orders = failingOrders{}
	f.uow.accounts = failingCredits{}

	req := mlbbRequest("acc-1")
	req.RequestID = "req-critical"
	_, err := f.service.Purchase(f.ctx, req)

	assert.ErrorIs(t, err, errs.ErrCriticalCompensation)
	assert.NotErrorIs(t, err, errs.ErrPurchaseFailed)
	assert.Equal(t, errs.CodeCriticalCompensation, errs.ErrorCode(err))

	var purchaseErr *errs.PurchaseError
	require.True(t, errors.As(err, &purchaseErr))
	assert.True(t, purchaseErr.Critical())
	assert.ErrorIs(t, purchaseErr.CompensationErr, errStoreDown)

	assert.Equal(t, int64(2600), f.balance(t, "acc-1"))
	assert.Equal(t, 0, f.orderCount(t))
	assert.Equal(t, entity.IntentCompensationFailed, f.intentState(t, "req-critical"))
}

func TestPurchase_BroadcastFailureDoesNotFailPurchase(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("telegram down")).Once()

	order, err := f.service.Purchase(f.ctx, mlbbRequest("acc-1"))

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))
}

func TestPurchase_RepeatedRequestIDReplaysOrder(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

	req := mlbbRequest("acc-1")
	req.RequestID = "req-twice"

	first, err := f.service.Purchase(f.ctx, req)
	require.NoError(t, err)
	second, err := f.service.Purchase(f.ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))
	assert.Equal(t, 1, f.orderCount(t))
}

func TestPurchase_RequestIDOfFailedPurchaseIsRejected(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 5000)
	f.uow.orders = failingOrders{}

	req := mlbbRequest("acc-1")
	req.RequestID = "req-reuse"
	_, err := f.service.Purchase(f.ctx, req)
	require.ErrorIs(t, err, errs.ErrPurchaseFailed)

	f.uow.orders = nil
	_, err = f.service.Purchase(f.ctx, req)
	assert.ErrorIs(t, err, errs.ErrDuplicatePurchase)
	assert.Equal(t, int64(5000), f.balance(t, "acc-1"))
}

func TestPurchase_OrderCodeCollisionDrawsNewCode(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	f.seedAccount(t, "acc-2", 10000)
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

	existing := &entity.Order{ID: "TAKEN001", AccountID: "acc-2", Price: 100, Status: entity.OrderPending, CreatedAt: time.Now()}
	require.NoError(t, f.orderRepo.Create(f.ctx, existing))

	codes := []string{"TAKEN001", "FRESH001"}
	f.service.WithCodeGenerator(func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	})

	req := mlbbRequest("acc-1")
	req.RequestID = "req-collide"
	order, err := f.service.Purchase(f.ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "FRESH001", order.ID)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))

	intent, err := f.intentRepo.GetByRequestID(f.ctx, "req-collide")
	require.NoError(t, err)
	assert.Equal(t, "FRESH001", intent.OrderID)
	assert.Equal(t, entity.IntentRecorded, intent.State)

	untouched, err := f.orderRepo.GetByID(f.ctx, "TAKEN001")
	require.NoError(t, err)
	assert.Equal(t, "acc-2", untouched.AccountID)
}

func TestPurchase_PersistentCollisionIsCompensated(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	require.NoError(t, f.orderRepo.Create(f.ctx, &entity.Order{ID: "TAKEN001", AccountID: "acc-2", Price: 100, CreatedAt: time.Now()}))
	f.service.WithCodeGenerator(func() (string, error) { return "TAKEN001", nil })

	_, err := f.service.Purchase(f.ctx, mlbbRequest("acc-1"))

	assert.ErrorIs(t, err, errs.ErrPurchaseFailed)
	assert.ErrorIs(t, err, errs.ErrDuplicateOrderID)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
	assert.Equal(t, 1, f.orderCount(t))
}

func TestPurchase_ConcurrentPurchasesNeverOverdraw(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Times(4)

	const buyers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		failures  []error
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Purchase(f.ctx, mlbbRequest("acc-1"))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			succeeded++
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, succeeded)
	assert.Equal(t, int64(400), f.balance(t, "acc-1"))
	assert.Equal(t, 4, f.orderCount(t))
	for _, err := range failures {
		assert.True(t, errs.IsInsufficientBalanceError(err), "unexpected error: %v", err)
	}
}

func TestPurchase_SummaryHasNoBlankIdentifiers(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)

	var summary string
	f.broadcaster.EXPECT().Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, text string) { summary = text }).
		Return(nil).Once()

	_, err := f.service.Purchase(f.ctx, usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "pubg-60", PlayerID: " 5123 "})
	require.NoError(t, err)

	assert.Contains(t, summary, "Player ID: 5123")
	assert.False(t, strings.Contains(summary, "Server ID"))
}
