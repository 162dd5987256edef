package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/atgamehub/storefront/internal/domain/entity"
	errs "github.com/atgamehub/storefront/internal/domain/error"
	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/samber/lo"
)

// CatalogUseCase joins the static catalog with the image settings table
type CatalogUseCase struct {
	catalog      *entity.Catalog
	settingsRepo persistence.SettingsRepository
	logger       coreport.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase
func NewCatalogUseCase(catalog *entity.Catalog, settingsRepo persistence.SettingsRepository, logger coreport.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalog:      catalog,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Lines returns every product line with its categories and image
func (u *CatalogUseCase) Lines(ctx context.Context) ([]usecase.LineView, error) {
	images, err := u.settingsRepo.ImageURLs(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(u.catalog.Lines(), func(line entity.ProductLine, _ int) usecase.LineView {
		return usecase.LineView{
			ProductLine: line,
			ImageURL:    images[line.ImageKey],
			Categories:  u.catalog.Categories(line.ID),
		}
	}), nil
}

// Items returns the items of a line, narrowed to category when it is set
func (u *CatalogUseCase) Items(ctx context.Context, lineID, category string) ([]usecase.ItemView, error) {
	if _, err := u.catalog.Line(lineID); err != nil {
		return nil, err
	}

	images, err := u.settingsRepo.ImageURLs(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(u.catalog.Items(lineID, category), func(item entity.Item, _ int) usecase.ItemView {
		return usecase.ItemView{
			Item:           item,
			FormattedPrice: entity.FormatAmount(item.Price),
			ImageURL:       images[item.ImageKey],
		}
	}), nil
}

// Images returns the image URL table
func (u *CatalogUseCase) Images(ctx context.Context) (map[string]string, error) {
	return u.settingsRepo.ImageURLs(ctx)
}

// SetImage creates or replaces an image URL
func (u *CatalogUseCase) SetImage(ctx context.Context, key, rawURL string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: image key is required", errs.ErrInvalidRequest)
	}
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: image must be an http(s) URL", errs.ErrInvalidRequest)
	}

	if err := u.settingsRepo.SetImageURL(ctx, key, parsed.String()); err != nil {
		return err
	}

	u.logger.Info("Image URL updated", map[string]any{"key": key})
	return nil
}

// DeleteImage removes an image URL
func (u *CatalogUseCase) DeleteImage(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: image key is required", errs.ErrInvalidRequest)
	}
	if err := u.settingsRepo.DeleteImageURL(ctx, key); err != nil {
		return err
	}

	u.logger.Info("Image URL removed", map[string]any{"key": key})
	return nil
}
