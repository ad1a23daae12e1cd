package product

import (
	"context"

	"vendia/internal/core/id"
	"vendia/internal/core/types"
	"vendia/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// ListCodes returns all product codes, including soft-deleted items.
	ListCodes(ctx context.Context) ([]string, error)

	// GetForUpdate retrieves a product with row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Product, error)

	// FindLowStock retrieves products with stock at or below minimum.
	FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error)

	// AdjustStock changes the stock level by delta (negative for sales).
	AdjustStock(ctx context.Context, id id.ID, delta types.Quantity) error
}
