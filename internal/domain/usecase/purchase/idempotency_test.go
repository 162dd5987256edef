package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	mpers "github.com/atgamehub/storefront/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIdempotencyHandler_CheckRequest(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	recorded := &entity.PurchaseIntent{ID: "int-1", RequestID: "req-1", AccountID: "acc-1", OrderID: "AB12CD34", State: entity.IntentRecorded, CreatedAt: now}
	inFlight := &entity.PurchaseIntent{ID: "int-2", RequestID: "req-2", AccountID: "acc-1", OrderID: "ZZ99ZZ99", State: entity.IntentDebited, CreatedAt: now}
	order := &entity.Order{ID: "AB12CD34", AccountID: "acc-1", Price: 2400, Status: entity.OrderPending}

	testCases := []struct {
		name          string
		accountID     string
		requestID     string
		mockSetup     func(uow *mpers.MockUnitOfWork, intents *mpers.MockIntentRepository, orders *mpers.MockOrderRepository)
		expectedOrder *entity.Order
		expectedError error
	}{
		{
			name:      "unused key",
			accountID: "acc-1",
			requestID: "req-new",
			mockSetup: func(uow *mpers.MockUnitOfWork, intents *mpers.MockIntentRepository, orders *mpers.MockOrderRepository) {
				uow.EXPECT().GetIntentRepository(mock.Anything).Return(intents)
				intents.EXPECT().GetByRequestID(mock.Anything, "req-new").Return(nil, errs.ErrIntentNotFound)
			},
		},
		{
			name:      "recorded purchase is replayed",
			accountID: "acc-1",
			requestID: "req-1",
			mockSetup: func(uow *mpers.MockUnitOfWork, intents *mpers.MockIntentRepository, orders *mpers.MockOrderRepository) {
				uow.EXPECT().GetIntentRepository(mock.Anything).Return(intents)
				uow.EXPECT().GetOrderRepository(mock.Anything).Return(orders)
				intents.EXPECT().GetByRequestID(mock.Anything, "req-1").Return(recorded, nil)
				orders.EXPECT().GetByID(mock.Anything, "AB12CD34").Return(order, nil)
			},
			expectedOrder: order,
		},
		{
			name:      "purchase still in flight",
			accountID: "acc-1",
			requestID: "req-2",
			mockSetup: func(uow *mpers.MockUnitOfWork, intents *mpers.MockIntentRepository, orders *mpers.MockOrderRepository) {
				uow.EXPECT().GetIntentRepository(mock.Anything).Return(intents)
				intents.EXPECT().GetByRequestID(mock.Anything, "req-2").Return(inFlight, nil)
			},
			expectedError: errs.ErrDuplicatePurchase,
		},
		{
			name:      "key used by another account",
			accountID: "acc-2",
			requestID: "req-1",
			mockSetup: func(uow *mpers.MockUnitOfWork, intents *mpers.MockIntentRepository, orders *mpers.MockOrderRepository) {
				uow.EXPECT().GetIntentRepository(mock.Anything).Return(intents)
				intents.EXPECT().GetByRequestID(mock.Anything, "req-1").Return(recorded, nil)
			},
			expectedError: errs.ErrDuplicatePurchase,
		},
		{
			name:      "database error",
			accountID: "acc-1",
			requestID: "req-1",
			mockSetup: func(uow *mpers.MockUnitOfWork, intents *mpers.MockIntentRepository, orders *mpers.MockOrderRepository) {
				uow.EXPECT().GetIntentRepository(mock.Anything).Return(intents)
				intents.EXPECT().GetByRequestID(mock.Anything, "req-1").Return(nil, errs.ErrDatabaseConnection)
			},
			expectedError: errs.ErrDatabaseConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uow := mpers.NewMockUnitOfWork(t)
			intents := mpers.NewMockIntentRepository(t)
			orders := mpers.NewMockOrderRepository(t)
			tc.mockSetup(uow, intents, orders)

			handler := NewIdempotencyHandler(uow)
			result, err := handler.CheckRequest(context.Background(), tc.accountID, tc.requestID)

			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError), "expected %v, got %v", tc.expectedError, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedOrder, result)
		})
	}
}
