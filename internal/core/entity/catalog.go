package entity

import (
	"context"

	"vendia/internal/core/apperror"
)

// Catalog is reference data addressed by a human-readable code:
// products, customers, categories.
type Catalog struct {
	BaseCatalog

	// Code is unique within the company. Left empty on create, the
	// service allocates the next sequential one before saving.
	Code string `db:"code" json:"code"`

	Name string `db:"name" json:"name"`
}

// NewCatalog builds a catalog entry with a fresh id.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseCatalog: NewBaseCatalog(),
		Code:        code,
		Name:        name,
	}
}

// Validate requires a name. The code may still be empty here.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
