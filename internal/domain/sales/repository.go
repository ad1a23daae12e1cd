package sales

import (
	"context"
	"time"

	"vendia/internal/core/id"
	"vendia/internal/domain"
)

// Repository defines storage operations for sale documents.
type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)
	GetByNumber(ctx context.Context, number string) (*Sale, error)
	Update(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, saleID id.ID) error

	GetLines(ctx context.Context, saleID id.ID) ([]SaleLine, error)
	SaveLines(ctx context.Context, saleID id.ID, lines []SaleLine) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)

	// ListNumbers returns the document numbers of every sale visible to
	// the company, including cancelled and soft-deleted ones. Used for
	// sequential number allocation.
	ListNumbers(ctx context.Context, companyID string) ([]string, error)
}

// ListFilter for filtering sales.
type ListFilter struct {
	domain.ListFilter

	CompanyID  string
	CustomerID *id.ID
	Status     *Status
	DateFrom   *time.Time
	DateTo     *time.Time
}
