// Package product provides the Product catalog: the goods a company
// keeps in stock and sells.
package product

import (
	"context"

	"vendia/internal/core/apperror"
	"vendia/internal/core/entity"
	"vendia/internal/core/id"
	"vendia/internal/core/types"
)

// Product represents a sellable item with pricing and stock levels.
type Product struct {
	entity.Catalog

	// CompanyID is the owning company. The repository stamps it on
	// create and filters every query by it.
	CompanyID string `db:"company_id" json:"companyId"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`

	// CategoryID is the reference to the product category
	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// PurchasePrice is the unit cost when buying
	PurchasePrice types.Money `db:"purchase_price" json:"purchasePrice"`

	// SalePrice is the default unit price when selling
	SalePrice types.Money `db:"sale_price" json:"salePrice"`

	// Stock is the current quantity on hand
	Stock types.Quantity `db:"stock" json:"stock"`

	// MinStock is the threshold below which the item is considered low
	MinStock types.Quantity `db:"min_stock" json:"minStock"`

	// Active indicates the product is available for new sales
	Active bool `db:"active" json:"active"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string) *Product {
	return &Product{
		Catalog:       entity.NewCatalog(code, name),
		PurchasePrice: types.Zero(),
		SalePrice:     types.Zero(),
		Stock:         types.Zero(),
		MinStock:      types.Zero(),
		Active:        true,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price cannot be negative").
			WithDetail("field", "purchasePrice")
	}

	if p.SalePrice.IsNegative() {
		return apperror.NewValidation("sale price cannot be negative").
			WithDetail("field", "salePrice")
	}

	if p.MinStock.IsNegative() {
		return apperror.NewValidation("minimum stock cannot be negative").
			WithDetail("field", "minStock")
	}

	return nil
}

// IsLowStock returns true if stock is at or below the minimum level.
func (p *Product) IsLowStock() bool {
	return p.Stock.LessThanOrEqual(p.MinStock)
}

// Margin returns the absolute difference between sale and purchase price.
func (p *Product) Margin() types.Money {
	return p.SalePrice.Sub(p.PurchasePrice)
}
