package account

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	mcore "github.com/atgamehub/storefront/mocks/port/core"
	mpers "github.com/atgamehub/storefront/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) *mcore.MockLogger {
	logger := mcore.NewMockLogger(t)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTestTime(t *testing.T) *mcore.MockTimeProvider {
	tp := mcore.NewMockTimeProvider(t)
	tp.On("Now").Return(fixedNow).Maybe()
	return tp
}

func testAccount(balance int64, version uint64) *entity.Account {
	return entity.RestoreAccount("acc-1", "player_one", "", balance, 0, version, fixedNow, fixedNow)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		displayName string
		setupMocks  func(repo *mpers.MockAccountRepository)
		expectedErr error
	}{
		{
			name:        "New display name",
			displayName: "player_one",
			setupMocks: func(repo *mpers.MockAccountRepository) {
				repo.On("GetByDisplayName", ctx, "player_one").Return(nil, errs.ErrAccountNotFound)
				repo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			},
		},
		{
			name:        "Display name taken",
			displayName: "player_one",
			setupMocks: func(repo *mpers.MockAccountRepository) {
				repo.On("GetByDisplayName", ctx, "player_one").Return(testAccount(0, 1), nil)
			},
			expectedErr: errs.ErrDuplicateDisplayName,
		},
		{
			name:        "Invalid display name",
			displayName: "a!",
			setupMocks:  func(repo *mpers.MockAccountRepository) {},
			expectedErr: errs.ErrInvalidDisplayName,
		},
		{
			name:        "Lookup failure",
			displayName: "player_one",
			setupMocks: func(repo *mpers.MockAccountRepository) {
				repo.On("GetByDisplayName", ctx, "player_one").Return(nil, errs.ErrDatabaseConnection)
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mpers.NewMockAccountRepository(t)
			tt.setupMocks(repo)
			uc := NewAccountUseCase(repo, newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

			account, err := uc.Register(ctx, "acc-1", tt.displayName, "")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "acc-1", account.ID)
			assert.Equal(t, int64(0), account.Balance())
		})
	}
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	repo := mpers.NewMockAccountRepository(t)
	repo.On("GetByID", ctx, "acc-1").Return(testAccount(2400, 3), nil)
	uc := NewAccountUseCase(repo, newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

	resp, err := uc.GetBalance(ctx, "acc-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2400), resp.Balance)
	assert.Equal(t, "2,400 Ks", resp.FormattedBalance)

	_, err = uc.GetBalance(ctx, "")
	assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
}

func TestDebit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		amount          int64
		setupMocks      func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider)
		expectedBalance int64
		expectedErr     error
	}{
		{
			name:   "Swap on first attempt",
			amount: 500,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(2000, 4), nil).Once()
				repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(4), int64(1500)).Return(true, nil).Once()
			},
			expectedBalance: 1500,
		},
		{
			name:   "Retry after version conflict",
			amount: 500,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(2000, 4), nil).Once()
				repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(4), int64(1500)).Return(false, nil).Once()
				tp.On("Sleep", ctx, mock.AnythingOfType("time.Duration")).Return(nil).Once()
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(1800, 5), nil).Once()
				repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(5), int64(1300)).Return(true, nil).Once()
			},
			expectedBalance: 1300,
		},
		{
			name:   "Conflict drains wallet",
			amount: 500,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(600, 4), nil).Once()
				repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(4), int64(100)).Return(false, nil).Once()
				tp.On("Sleep", ctx, mock.AnythingOfType("time.Duration")).Return(nil).Once()
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(100, 5), nil).Once()
			},
			expectedErr: errs.ErrInsufficientBalance,
		},
		{
			name:   "Insufficient balance",
			amount: 2500,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(2000, 4), nil).Once()
			},
			expectedErr: errs.ErrInsufficientBalance,
		},
		{
			name:   "Retries exhausted",
			amount: 100,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(2000, 4), nil).Times(3)
				repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(4), int64(1900)).Return(false, nil).Times(3)
				tp.On("Sleep", ctx, mock.AnythingOfType("time.Duration")).Return(nil).Times(2)
			},
			expectedErr: errs.ErrConcurrentUpdate,
		},
		{
			name:   "Context cancelled while backing off",
			amount: 100,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(testAccount(2000, 4), nil).Once()
				repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(4), int64(1900)).Return(false, nil).Once()
				tp.On("Sleep", ctx, mock.AnythingOfType("time.Duration")).Return(context.Canceled).Once()
			},
			expectedErr: context.Canceled,
		},
		{
			name:        "Non-positive amount",
			amount:      0,
			setupMocks:  func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {},
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name:   "Unknown account",
			amount: 100,
			setupMocks: func(repo *mpers.MockAccountRepository, tp *mcore.MockTimeProvider) {
				repo.On("GetByID", ctx, "acc-1").Return(nil, errs.ErrAccountNotFound).Once()
			},
			expectedErr: errs.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mpers.NewMockAccountRepository(t)
			tp := newTestTime(t)
			tt.setupMocks(repo, tp)
			policy := RetryPolicy{MaxRetries: 2, Interval: time.Millisecond, MaxInterval: 4 * time.Millisecond}
			uc := NewAccountUseCase(repo, tp, newTestLogger(t), policy)

			account, err := uc.Debit(ctx, "acc-1", tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, account.Balance())
		})
	}
}

func TestDebitInsufficientCarriesAmounts(t *testing.T) {
	ctx := context.Background()
	repo := mpers.NewMockAccountRepository(t)
	repo.On("GetByID", ctx, "acc-1").Return(testAccount(300, 1), nil)
	uc := NewAccountUseCase(repo, newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

	_, err := uc.Debit(ctx, "acc-1", 2400)

	var insufficient *errs.InsufficientBalanceError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, int64(2400), insufficient.Required)
	assert.Equal(t, int64(300), insufficient.Available)
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	repo := mpers.NewMockAccountRepository(t)
	repo.On("AdjustBalance", ctx, "acc-1", int64(700)).Return(testAccount(2700, 5), nil)
	uc := NewAccountUseCase(repo, newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

	account, err := uc.Credit(ctx, "acc-1", 700)
	require.NoError(t, err)
	assert.Equal(t, int64(2700), account.Balance())

	_, err = uc.Credit(ctx, "acc-1", -5)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestAdminAdjust(t *testing.T) {
	ctx := context.Background()

	t.Run("Positive delta credits", func(t *testing.T) {
		repo := mpers.NewMockAccountRepository(t)
		repo.On("AdjustBalance", ctx, "acc-1", int64(1000)).Return(testAccount(1000, 2), nil)
		uc := NewAccountUseCase(repo, newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

		account, err := uc.AdminAdjust(ctx, "acc-1", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), account.Balance())
	})

	t.Run("Negative delta debits", func(t *testing.T) {
		repo := mpers.NewMockAccountRepository(t)
		repo.On("GetByID", ctx, "acc-1").Return(testAccount(1000, 2), nil)
		repo.On("CompareAndSwapBalance", ctx, "acc-1", uint64(2), int64(400)).Return(true, nil)
		uc := NewAccountUseCase(repo, newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

		account, err := uc.AdminAdjust(ctx, "acc-1", -600)
		require.NoError(t, err)
		assert.Equal(t, int64(400), account.Balance())
	})

	t.Run("Zero and min int rejected", func(t *testing.T) {
		uc := NewAccountUseCase(mpers.NewMockAccountRepository(t), newTestTime(t), newTestLogger(t), DefaultRetryPolicy())

		_, err := uc.AdminAdjust(ctx, "acc-1", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		_, err = uc.AdminAdjust(ctx, "acc-1", math.MinInt64)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestRetryPolicyBackoff(t *testing.T) {
	policy := RetryPolicy{Interval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, policy.backoff(0))
	assert.Equal(t, 20*time.Millisecond, policy.backoff(1))
	assert.Equal(t, 40*time.Millisecond, policy.backoff(2))
	assert.Equal(t, 50*time.Millisecond, policy.backoff(3))

	policy.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		d := policy.backoff(1)
		assert.GreaterOrEqual(t, d, 20*time.Millisecond)
		assert.LessOrEqual(t, d, 30*time.Millisecond)
	}
}
