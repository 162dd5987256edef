package purchase

import (
	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
)

// Quote is a validated purchase request priced against the catalog
type Quote struct {
	Line     entity.ProductLine
	Item     entity.Item
	Quantity int
	Charge   int64
}

// PurchaseValidator checks a request against the catalog without touching any store
type PurchaseValidator struct {
	catalog *entity.Catalog
}

// NewPurchaseValidator creates a new PurchaseValidator
func NewPurchaseValidator(catalog *entity.Catalog) *PurchaseValidator {
	return &PurchaseValidator{catalog: catalog}
}

// Validate resolves the item, normalizes the quantity, checks the buyer
// identifiers the line needs and computes the charge
func (v *PurchaseValidator) Validate(req usecase.PurchaseRequest) (*Quote, error) {
	if req.AccountID == "" {
		return nil, errs.ErrInvalidAccountID
	}

	item, err := v.catalog.Item(req.ItemID)
	if err != nil {
		return nil, err
	}

	line, err := v.catalog.Line(item.LineID)
	if err != nil {
		return nil, err
	}

	quantity, err := item.NormalizeQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := line.CheckIdentifiers(req.PlayerID, req.ServerID); err != nil {
		return nil, err
	}

	charge, err := entity.MultiplyPrice(item.Price, quantity)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Line:     line,
		Item:     item,
		Quantity: quantity,
		Charge:   charge,
	}, nil
}
