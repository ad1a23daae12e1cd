// Package category provides the product Category catalog.
// Categories form a flat list used for grouping products and for
// sales reporting breakdowns.
package category

import (
	"context"

	"vendia/internal/core/entity"
)

// Category represents a product grouping.
type Category struct {
	entity.Catalog

	// CompanyID is the owning company. The repository stamps it on
	// create and filters every query by it.
	CompanyID string `db:"company_id" json:"companyId"`

	// Description is an optional longer description
	Description *string `db:"description" json:"description,omitempty"`
}

// NewCategory creates a new Category with required fields.
func NewCategory(code, name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Category) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
