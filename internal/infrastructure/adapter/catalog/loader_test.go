package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atgamehub/storefront/internal/domain/entity"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	require.NotEmpty(t, c.Lines())

	mlbb, err := c.Line("mlbb")
	require.NoError(t, err)
	assert.True(t, mlbb.RequiresPlayerID)
	assert.True(t, mlbb.RequiresServerID)
	assert.Equal(t, entity.KindGame, mlbb.Kind)

	item, err := c.Item("mlbb-wdp")
	require.NoError(t, err)
	assert.Equal(t, "mlbb", item.LineID)
	assert.True(t, item.Multiple)
	assert.Positive(t, item.Price)

	assert.Equal(t, []string{"Diamonds", "Passes"}, c.Categories("mlbb"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
lines:
  - {id: pubg, name: PUBG Mobile, kind: game, requiresPlayerId: true}
items:
  - {id: uc-60, line: pubg, category: UC, name: 60 UC, price: 4300}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Items("pubg", ""), 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"unknown field": `
lines:
  - {id: pubg, name: PUBG, kind: game, requiresPlayerID: true}
`,
		"unknown line": `
lines:
  - {id: pubg, name: PUBG, kind: game}
items:
  - {id: x, line: mlbb, name: X, price: 100}
`,
		"not yaml": "lines: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
