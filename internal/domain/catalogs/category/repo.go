package category

import (
	"context"

	"vendia/internal/domain"
)

// Repository defines the interface for Category persistence.
type Repository interface {
	domain.CatalogRepository[*Category]

	// ListCodes returns all category codes, including soft-deleted items.
	ListCodes(ctx context.Context) ([]string, error)
}
