package category

import (
	"context"
	"fmt"

	"vendia/internal/core/numerator"
	"vendia/internal/core/tx"
	"vendia/internal/domain"
)

// Service provides business logic for the Category catalog.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "category",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *Category) error {
	if item.Code != "" {
		return nil
	}

	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return fmt.Errorf("list category codes: %w", err)
	}
	item.Code = numerator.Next(codes, numerator.DefaultConfig())

	return nil
}
