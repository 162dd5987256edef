package purchase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	"github.com/atgamehub/storefront/internal/domain/usecase/purchase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staleAfter = 2 * time.Minute

func newReconciler(f *fixture) *purchase.Reconciler {
	return purchase.NewReconciler(f.uow, staleAfter, f.timeProvider, f.logger)
}

func TestReconcile_RefundsDebitedIntentWithoutOrder(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "LOST0001", 2400, entity.IntentDebited, 10*time.Minute)
	reconciler := newReconciler(f)

	report, err := reconciler.Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Compensated)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentCompensated, f.intentState(t, "req-LOST0001"))

	again, err := reconciler.Reconcile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Scanned)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
}

func TestReconcile_MarksDebitedIntentWithOrderRecorded(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "DONE0001", 2400, entity.IntentDebited, 10*time.Minute)
	require.NoError(t, f.orderRepo.Create(f.ctx, &entity.Order{
		ID:        "DONE0001",
		AccountID: "acc-1",
		Price:     2400,
		Status:    entity.OrderPending,
		CreatedAt: time.Now(),
	}))

	report, err := newReconciler(f).Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Recorded)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentRecorded, f.intentState(t, "req-DONE0001"))
}

func TestReconcile_ForeignOrderWithSameCodeIsNotTaken(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "SHARED01", 2400, entity.IntentDebited, 10*time.Minute)
	require.NoError(t, f.orderRepo.Create(f.ctx, &entity.Order{ID: "SHARED01", AccountID: "acc-9", Price: 900, CreatedAt: time.Now()}))

	report, err := newReconciler(f).Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Compensated)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
}

func TestReconcile_StaleSnapshotDoesNotRefundTwice(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "TWICE001", 2400, entity.IntentDebited, 10*time.Minute)

	snapshot, err := f.intentRepo.ListOpen(f.ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	first, err := newReconciler(f).Reconcile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Compensated)

	late := &faultyUnitOfWork{
		UnitOfWork: f.uow.UnitOfWork,
		intents:    snapshotIntents{IntentRepository: f.intentRepo, open: snapshot},
	}
	second, err := purchase.NewReconciler(late, staleAfter, f.timeProvider, f.logger).Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, second.Scanned)
	assert.Equal(t, 1, second.Skipped)
	assert.Equal(t, 0, second.Compensated)
	assert.Equal(t, 0, second.Failed)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentCompensated, f.intentState(t, "req-TWICE001"))
}

func TestReconcile_ConcurrentSweepsRefundOnce(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 0)
	f.seedIntent(t, "acc-1", "RACE0001", 100, entity.IntentDebited, 10*time.Minute)

	const sweeps = 8
	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		compensated int
	)
	for i := 0; i < sweeps; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := newReconciler(f).Reconcile(f.ctx)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, 0, report.Failed)
			mu.Lock()
			compensated += report.Compensated
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, compensated)
	assert.Equal(t, int64(100), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentCompensated, f.intentState(t, "req-RACE0001"))
}

func TestReconcile_AbandonsStartedIntentWithoutOrder(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 10000)
	f.seedIntent(t, "acc-1", "NEVER001", 2400, entity.IntentStarted, 10*time.Minute)

	report, err := newReconciler(f).Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Abandoned)
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentAbandoned, f.intentState(t, "req-NEVER001"))
}

func TestReconcile_LeavesFreshAndTerminalIntentsAlone(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "FRESH001", 2400, entity.IntentDebited, 10*time.Second)
	f.seedIntent(t, "acc-1", "STUCK001", 2400, entity.IntentCompensationFailed, time.Hour)

	report, err := newReconciler(f).Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))
	assert.Equal(t, entity.IntentDebited, f.intentState(t, "req-FRESH001"))
	assert.Equal(t, entity.IntentCompensationFailed, f.intentState(t, "req-STUCK001"))
}

func TestReconcile_FailedRefundIsNotRetried(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "LOST0002", 2400, entity.IntentDebited, 10*time.Minute)
	f.uow.accounts = failingCredits{}
	reconciler := newReconciler(f)

	report, err := reconciler.Reconcile(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Compensated)
	assert.Equal(t, entity.IntentCompensationFailed, f.intentState(t, "req-LOST0002"))

	f.uow.accounts = nil
	again, err := reconciler.Reconcile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Scanned)
	assert.Equal(t, int64(7600), f.balance(t, "acc-1"))
}

func TestReconcile_RunStopsWithContext(t *testing.T) {
	f := newFixture(t)
	f.seedAccount(t, "acc-1", 7600)
	f.seedIntent(t, "acc-1", "LOST0003", 2400, entity.IntentDebited, 10*time.Minute)

	ctx, cancel := context.WithCancel(f.ctx)
	done := make(chan struct{})
	go func() {
		newReconciler(f).Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		intent, err := f.intentRepo.GetByRequestID(f.ctx, "req-LOST0003")
		return err == nil && intent.State == entity.IntentCompensated
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop")
	}
	assert.Equal(t, int64(10000), f.balance(t, "acc-1"))
}
