package customer

import (
	"context"

	"vendia/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// ListCodes returns all customer codes, including soft-deleted items.
	ListCodes(ctx context.Context) ([]string, error)

	// FindByEmail retrieves a customer by email address.
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}
