package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vendia/internal/core/entity"
	"vendia/internal/core/types"
)

type mockCatalog struct {
	entity.Catalog
	Price  types.Money `db:"price" json:"price"`
	Hidden string      `db:"-" json:"hidden"`
	NoTag  string
}

func TestExtractDBColumns_EmbeddedFields(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name", "price",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	assert.NotContains(t, cols, "-")
	assert.Len(t, cols, len(expectedCols))
}

func TestStructToMap_EmbeddedFields(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.NewCatalog("P-000001", "Coffee Beans"),
		Price:   types.MustMoney("12.50"),
		Hidden:  "skip me",
		NoTag:   "skip me too",
	}
	cat.Version = 5
	cat.DeletionMark = true

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "P-000001", m["code"])
	assert.Equal(t, "Coffee Beans", m["name"])
	assert.Equal(t, cat.Price, m["price"])
	assert.NotContains(t, m, "-")
}

func TestStructToMap_PointerAndValueAgree(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.NewCatalog("P-000002", "Filter Paper"),
		Price:   types.MustMoney("3.20"),
	}

	assert.Equal(t, StructToMap(cat), StructToMap(&cat))
}
