package entity

import (
	"fmt"
	"strings"

	errs "github.com/atgamehub/storefront/internal/domain/error"
	"github.com/samber/lo"
)

// LineKind distinguishes game top-ups from social media boosts
type LineKind string

// Product line kinds
const (
	KindGame   LineKind = "game"
	KindSocial LineKind = "social"
)

// MaxQuantity caps multi-unit purchases
const MaxQuantity = 100

// Buyer identifier field names as reported in MissingIdentifierError
const (
	FieldPlayerID = "playerId"
	FieldServerID = "serverId"
)

// ProductLine is a game or digital service that groups catalog items
type ProductLine struct {
	ID               string   `yaml:"id" json:"id"`
	Name             string   `yaml:"name" json:"name"`
	Kind             LineKind `yaml:"kind" json:"kind"`
	RequiresPlayerID bool     `yaml:"requiresPlayerId" json:"requiresPlayerId"`
	RequiresServerID bool     `yaml:"requiresServerId" json:"requiresServerId"`
	ImageKey         string   `yaml:"imageKey" json:"imageKey"`
}

// Item is a purchasable SKU
type Item struct {
	ID       string `yaml:"id" json:"id"`
	LineID   string `yaml:"line" json:"lineId"`
	Category string `yaml:"category" json:"category"`
	Name     string `yaml:"name" json:"name"`
	Price    int64  `yaml:"price" json:"price"`
	Multiple bool   `yaml:"multiple" json:"multiple"`
	ImageKey string `yaml:"imageKey" json:"imageKey"`
}

// CheckIdentifiers verifies the buyer identifiers the line needs are present
func (l ProductLine) CheckIdentifiers(playerID, serverID string) error {
	if l.RequiresPlayerID && strings.TrimSpace(playerID) == "" {
		return errs.NewMissingIdentifierError(l.ID, FieldPlayerID)
	}
	if l.RequiresServerID && strings.TrimSpace(serverID) == "" {
		return errs.NewMissingIdentifierError(l.ID, FieldServerID)
	}
	return nil
}

// NormalizeQuantity reads 0 as 1 and rejects quantities the item does not allow
func (i Item) NormalizeQuantity(quantity int) (int, error) {
	switch {
	case quantity == 0:
		return 1, nil
	case quantity < 0:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidQuantity, quantity)
	case quantity > 1 && !i.Multiple:
		return 0, fmt.Errorf("%w: %s is sold one unit per order", errs.ErrInvalidQuantity, i.ID)
	case quantity > MaxQuantity:
		return 0, fmt.Errorf("%w: at most %d units per order", errs.ErrInvalidQuantity, MaxQuantity)
	}
	return quantity, nil
}

// Catalog is the read-only set of product lines and items
type Catalog struct {
	lines     []ProductLine
	items     []Item
	lineIndex map[string]int
	itemIndex map[string]int
}

// NewCatalog validates and indexes lines and items
func NewCatalog(lines []ProductLine, items []Item) (*Catalog, error) {
	c := &Catalog{
		lines:     lines,
		items:     items,
		lineIndex: make(map[string]int, len(lines)),
		itemIndex: make(map[string]int, len(items)),
	}

	for i, line := range lines {
		if line.ID == "" {
			return nil, fmt.Errorf("catalog: product line #%d has no id", i)
		}
		if line.Kind != KindGame && line.Kind != KindSocial {
			return nil, fmt.Errorf("catalog: product line %s has unknown kind %q", line.ID, line.Kind)
		}
		if _, dup := c.lineIndex[line.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product line %s", line.ID)
		}
		c.lineIndex[line.ID] = i
	}

	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog: item #%d has no id", i)
		}
		if _, ok := c.lineIndex[item.LineID]; !ok {
			return nil, fmt.Errorf("catalog: item %s references unknown line %s", item.ID, item.LineID)
		}
		if item.Price <= 0 {
			return nil, fmt.Errorf("catalog: item %s has non-positive price", item.ID)
		}
		if _, dup := c.itemIndex[item.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate item %s", item.ID)
		}
		c.itemIndex[item.ID] = i
	}

	return c, nil
}

// Lines returns all product lines in catalog order
func (c *Catalog) Lines() []ProductLine {
	return append([]ProductLine(nil), c.lines...)
}

// Line looks up a product line
func (c *Catalog) Line(id string) (ProductLine, error) {
	idx, ok := c.lineIndex[id]
	if !ok {
		return ProductLine{}, fmt.Errorf("%w: %s", errs.ErrLineNotFound, id)
	}
	return c.lines[idx], nil
}

// Item looks up an item
func (c *Catalog) Item(id string) (Item, error) {
	idx, ok := c.itemIndex[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", errs.ErrItemNotFound, id)
	}
	return c.items[idx], nil
}

// Categories returns the distinct categories of a line in catalog order
func (c *Catalog) Categories(lineID string) []string {
	return lo.Uniq(lo.FilterMap(c.items, func(item Item, _ int) (string, bool) {
		return item.Category, item.LineID == lineID
	}))
}

// Items returns the items of a line, optionally narrowed to one category
func (c *Catalog) Items(lineID, category string) []Item {
	return lo.Filter(c.items, func(item Item, _ int) bool {
		return item.LineID == lineID && (category == "" || item.Category == category)
	})
}
