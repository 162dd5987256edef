package usecase

import (
	"context"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

// LineView is a product line joined with its display image
type LineView struct {
	entity.ProductLine
	ImageURL   string   `json:"imageUrl,omitempty"`
	Categories []string `json:"categories"`
}

// ItemView is a catalog item joined with its display image
type ItemView struct {
	entity.Item
	FormattedPrice string `json:"formattedPrice"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// CatalogUseCase defines catalog browsing and image management
type CatalogUseCase interface {
	// Lines returns every product line with its categories and image
	Lines(ctx context.Context) ([]LineView, error)

	// Items returns the items of a line, optionally narrowed to a category
	Items(ctx context.Context, lineID, category string) ([]ItemView, error)

	// Images returns the image URL table
	Images(ctx context.Context) (map[string]string, error)

	// SetImage creates or replaces an image URL
	SetImage(ctx context.Context, key, url string) error

	// DeleteImage removes an image URL
	DeleteImage(ctx context.Context, key string) error
}
