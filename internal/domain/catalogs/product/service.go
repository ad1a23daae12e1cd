package product

import (
	"context"
	"fmt"

	"vendia/internal/core/numerator"
	"vendia/internal/core/tx"
	"vendia/internal/domain"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates the next free code when none is provided.
func (s *Service) prepareForCreate(ctx context.Context, item *Product) error {
	if item.Code != "" {
		return nil
	}

	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return fmt.Errorf("list product codes: %w", err)
	}
	item.Code = numerator.Next(codes, numerator.DefaultConfig())

	return nil
}

// --- Entity-specific methods ---

// FindLowStock retrieves products with stock at or below minimum.
func (s *Service) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	return s.repo.FindLowStock(ctx, filter)
}
