// Package catalog loads the static product catalog from YAML
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

//go:embed catalog.yaml
var embedded []byte

type document struct {
	Lines []entity.ProductLine `yaml:"lines"`
	Items []entity.Item        `yaml:"items"`
}

// Load reads the catalog from path, or the embedded catalog when path is empty
func Load(path string) (*entity.Catalog, error) {
	if path == "" {
		return Parse(embedded)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document. Unknown fields are rejected
// so that typos in price or flag names fail at startup.
func Parse(data []byte) (*entity.Catalog, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return entity.NewCatalog(doc.Lines, doc.Items)
}
