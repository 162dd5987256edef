package purchase

import (
	"errors"
	"testing"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *entity.Catalog {
	t.Helper()
	catalog, err := entity.NewCatalog(
		[]entity.ProductLine{
			{ID: "mlbb", Name: "Mobile Legends", Kind: entity.KindGame, RequiresPlayerID: true, RequiresServerID: true},
			{ID: "pubg", Name: "PUBG Mobile", Kind: entity.KindGame, RequiresPlayerID: true},
			{ID: "tiktok", Name: "TikTok", Kind: entity.KindSocial},
		},
		[]entity.Item{
			{ID: "mlbb-86", LineID: "mlbb", Category: "diamonds", Name: "86 Diamonds", Price: 2400},
			{ID: "pubg-60", LineID: "pubg", Category: "uc", Name: "60 UC", Price: 1500, Multiple: true},
			{ID: "tiktok-1k", LineID: "tiktok", Category: "followers", Name: "1K Followers", Price: 9000},
			{ID: "tiktok-likes", LineID: "tiktok", Category: "likes", Name: "100 Likes", Price: 1 << 60, Multiple: true},
		},
	)
	require.NoError(t, err)
	return catalog
}

func TestPurchaseValidator(t *testing.T) {
	validator := NewPurchaseValidator(testCatalog(t))

	tests := []struct {
		name             string
		req              usecase.PurchaseRequest
		expectedQuantity int
		expectedCharge   int64
		expectedErr      error
	}{
		{
			name:             "Single unit with both identifiers",
			req:              usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "mlbb-86", PlayerID: "12345678", ServerID: "2001"},
			expectedQuantity: 1,
			expectedCharge:   2400,
		},
		{
			name:             "Multi-unit item",
			req:              usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "pubg-60", Quantity: 3, PlayerID: "5123"},
			expectedQuantity: 3,
			expectedCharge:   4500,
		},
		{
			name:             "Social line needs no identifiers",
			req:              usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "tiktok-1k"},
			expectedQuantity: 1,
			expectedCharge:   9000,
		},
		{
			name:        "Missing account",
			req:         usecase.PurchaseRequest{ItemID: "tiktok-1k"},
			expectedErr: errs.ErrInvalidAccountID,
		},
		{
			name:        "Unknown item",
			req:         usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "nope"},
			expectedErr: errs.ErrItemNotFound,
		},
		{
			name:        "Blank server id",
			req:         usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "mlbb-86", PlayerID: "12345678", ServerID: "   "},
			expectedErr: errs.ErrMissingIdentifier,
		},
		{
			name:        "Several units of a single-unit item",
			req:         usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "mlbb-86", Quantity: 2, PlayerID: "1", ServerID: "2"},
			expectedErr: errs.ErrInvalidQuantity,
		},
		{
			name:        "Negative quantity",
			req:         usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "pubg-60", Quantity: -1, PlayerID: "1"},
			expectedErr: errs.ErrInvalidQuantity,
		},
		{
			name:        "Charge overflows",
			req:         usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "tiktok-likes", Quantity: 50},
			expectedErr: errs.ErrAmountOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := validator.Validate(tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, quote)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedQuantity, quote.Quantity)
			assert.Equal(t, tt.expectedCharge, quote.Charge)
			assert.Equal(t, tt.req.ItemID, quote.Item.ID)
		})
	}
}

func TestPurchaseValidatorNamesMissingField(t *testing.T) {
	validator := NewPurchaseValidator(testCatalog(t))

	_, err := validator.Validate(usecase.PurchaseRequest{AccountID: "acc-1", ItemID: "pubg-60"})

	var missing *errs.MissingIdentifierError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, entity.FieldPlayerID, missing.Field)
	assert.Equal(t, "pubg", missing.LineID)
}
