package topup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	mcore "github.com/atgamehub/storefront/mocks/port/core"
	mmsg "github.com/atgamehub/storefront/mocks/port/messaging"
	mpers "github.com/atgamehub/storefront/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

type contextKey string

const txKey contextKey = "tx"

type mocks struct {
	uow         *mpers.MockUnitOfWork
	accounts    *mpers.MockAccountRepository
	topUps      *mpers.MockTopUpRepository
	broadcaster *mmsg.MockBroadcaster
}

func newUseCase(t *testing.T, limits Limits) (*TopUpUseCase, *mocks) {
	m := &mocks{
		uow:         mpers.NewMockUnitOfWork(t),
		accounts:    mpers.NewMockAccountRepository(t),
		topUps:      mpers.NewMockTopUpRepository(t),
		broadcaster: mmsg.NewMockBroadcaster(t),
	}
	m.uow.On("GetAccountRepository", mock.Anything).Return(m.accounts).Maybe()
	m.uow.On("GetTopUpRepository", mock.Anything).Return(m.topUps).Maybe()

	tp := mcore.NewMockTimeProvider(t)
	tp.On("Now").Return(now).Maybe()

	logger := mcore.NewMockLogger(t)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()

	return NewTopUpUseCase(m.uow, m.broadcaster, limits, tp, logger), m
}

func defaultLimits() Limits {
	return Limits{MinAmount: 1000, MaxAmount: 1000000, BonusCoinPercent: decimal.NewFromInt(5)}
}

func pendingRequest() *entity.TopUpRequest {
	return &entity.TopUpRequest{
		ID:          "top-1",
		AccountID:   "acc-1",
		Username:    "player_one",
		Amount:      10000,
		EvidenceURL: "https://cdn.example.com/slip.jpg",
		Status:      entity.TopUpPending,
		CreatedAt:   now,
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	account := entity.RestoreAccount("acc-1", "player_one", "", 0, 0, 1, now, now)

	tests := []struct {
		name        string
		amount      int64
		evidence    string
		setupMocks  func(m *mocks)
		expectedErr error
	}{
		{
			name:     "Valid request is stored and broadcast",
			amount:   10000,
			evidence: "https://cdn.example.com/slip.jpg",
			setupMocks: func(m *mocks) {
				m.accounts.On("GetByID", ctx, "acc-1").Return(account, nil)
				m.topUps.On("Create", ctx, mock.AnythingOfType("*entity.TopUpRequest")).Return(nil)
				m.broadcaster.On("SendWithImage", ctx, mock.AnythingOfType("string"), "https://cdn.example.com/slip.jpg").Return(nil).Once()
			},
		},
		{
			name:     "Broadcast failure is ignored",
			amount:   10000,
			evidence: "https://cdn.example.com/slip.jpg",
			setupMocks: func(m *mocks) {
				m.accounts.On("GetByID", ctx, "acc-1").Return(account, nil)
				m.topUps.On("Create", ctx, mock.Anything).Return(nil)
				m.broadcaster.On("SendWithImage", ctx, mock.Anything, mock.Anything).Return(errors.New("telegram down")).Once()
			},
		},
		{
			name:        "Below minimum",
			amount:      500,
			evidence:    "https://cdn.example.com/slip.jpg",
			setupMocks:  func(m *mocks) {},
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name:        "Above maximum",
			amount:      2000000,
			evidence:    "https://cdn.example.com/slip.jpg",
			setupMocks:  func(m *mocks) {},
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name:     "Evidence is not a URL",
			amount:   10000,
			evidence: "slip.jpg",
			setupMocks: func(m *mocks) {
				m.accounts.On("GetByID", ctx, "acc-1").Return(account, nil)
			},
			expectedErr: errs.ErrInvalidEvidence,
		},
		{
			name:     "Unknown account",
			amount:   10000,
			evidence: "https://cdn.example.com/slip.jpg",
			setupMocks: func(m *mocks) {
				m.accounts.On("GetByID", ctx, "acc-1").Return(nil, errs.ErrAccountNotFound)
			},
			expectedErr: errs.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newUseCase(t, defaultLimits())
			tt.setupMocks(m)

			request, err := uc.Submit(ctx, "acc-1", tt.amount, tt.evidence)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, request)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.TopUpPending, request.Status)
			assert.Equal(t, "player_one", request.Username)
			assert.NotEmpty(t, request.ID)
		})
	}
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "tx")

	t.Run("Credits amount and bonus in one transaction", func(t *testing.T) {
		uc, m := newUseCase(t, defaultLimits())
		m.uow.On("Begin", ctx).Return(txCtx, nil).Once()
		m.topUps.On("GetByID", txCtx, "top-1").Return(pendingRequest(), nil)
		m.topUps.On("UpdateReview", txCtx, mock.AnythingOfType("*entity.TopUpRequest"), entity.TopUpPending).Return(nil)
		m.accounts.On("AdjustBalance", txCtx, "acc-1", int64(10000)).Return(entity.RestoreAccount("acc-1", "player_one", "", 10000, 0, 2, now, now), nil)
		m.accounts.On("AddCoins", txCtx, "acc-1", int64(500)).Return(nil)
		m.uow.On("Commit", txCtx).Return(nil).Once()

		request, err := uc.Approve(ctx, "top-1", "admin@atgamehub")

		require.NoError(t, err)
		assert.Equal(t, entity.TopUpApproved, request.Status)
		assert.Equal(t, int64(500), request.BonusCoins)
		assert.Equal(t, "admin@atgamehub", request.ReviewedBy)
		require.NotNil(t, request.ReviewedAt)
	})

	t.Run("Already approved request is refused", func(t *testing.T) {
		uc, m := newUseCase(t, defaultLimits())
		approved := pendingRequest()
		approved.Status = entity.TopUpApproved
		m.uow.On("Begin", ctx).Return(txCtx, nil).Once()
		m.topUps.On("GetByID", txCtx, "top-1").Return(approved, nil)
		m.uow.On("Rollback", txCtx).Return(nil).Once()

		_, err := uc.Approve(ctx, "top-1", "admin")

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		m.accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Credit failure rolls back the review", func(t *testing.T) {
		uc, m := newUseCase(t, defaultLimits())
		m.uow.On("Begin", ctx).Return(txCtx, nil).Once()
		m.topUps.On("GetByID", txCtx, "top-1").Return(pendingRequest(), nil)
		m.topUps.On("UpdateReview", txCtx, mock.Anything, entity.TopUpPending).Return(nil)
		m.accounts.On("AdjustBalance", txCtx, "acc-1", int64(10000)).Return(nil, errs.ErrDatabaseConnection)
		m.uow.On("Rollback", txCtx).Return(nil).Once()

		_, err := uc.Approve(ctx, "top-1", "admin")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("No bonus without a percentage", func(t *testing.T) {
		limits := defaultLimits()
		limits.BonusCoinPercent = decimal.Zero
		uc, m := newUseCase(t, limits)
		m.uow.On("Begin", ctx).Return(txCtx, nil).Once()
		m.topUps.On("GetByID", txCtx, "top-1").Return(pendingRequest(), nil)
		m.topUps.On("UpdateReview", txCtx, mock.Anything, entity.TopUpPending).Return(nil)
		m.accounts.On("AdjustBalance", txCtx, "acc-1", int64(10000)).Return(entity.RestoreAccount("acc-1", "p", "", 10000, 0, 2, now, now), nil)
		m.uow.On("Commit", txCtx).Return(nil).Once()

		request, err := uc.Approve(ctx, "top-1", "admin")

		require.NoError(t, err)
		assert.Equal(t, int64(0), request.BonusCoins)
		m.accounts.AssertNotCalled(t, "AddCoins", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending request is rejected", func(t *testing.T) {
		uc, m := newUseCase(t, defaultLimits())
		m.topUps.On("GetByID", ctx, "top-1").Return(pendingRequest(), nil)
		m.topUps.On("UpdateReview", ctx, mock.Anything, entity.TopUpPending).Return(nil)

		request, err := uc.Reject(ctx, "top-1", "admin")

		require.NoError(t, err)
		assert.Equal(t, entity.TopUpRejected, request.Status)
		m.accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown request", func(t *testing.T) {
		uc, m := newUseCase(t, defaultLimits())
		m.topUps.On("GetByID", ctx, "missing").Return(nil, errs.ErrTopUpNotFound)

		_, err := uc.Reject(ctx, "missing", "admin")

		assert.ErrorIs(t, err, errs.ErrTopUpNotFound)
	})
}

func TestListByStatus(t *testing.T) {
	ctx := context.Background()
	uc, m := newUseCase(t, defaultLimits())
	m.topUps.On("ListByStatus", ctx, entity.TopUpPending).Return([]*entity.TopUpRequest{pendingRequest()}, nil)

	requests, err := uc.ListByStatus(ctx, entity.TopUpPending)
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	_, err = uc.ListByStatus(ctx, "archived")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
