package customer

import (
	"context"
	"fmt"

	"vendia/internal/core/apperror"
	"vendia/internal/core/id"
	"vendia/internal/core/numerator"
	"vendia/internal/core/tx"
	"vendia/internal/domain"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	*domain.CatalogService[*Customer]
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "customer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkEmailUnique)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, item *Customer) error {
	if item.Code == "" {
		codes, err := s.repo.ListCodes(ctx)
		if err != nil {
			return fmt.Errorf("list customer codes: %w", err)
		}
		item.Code = numerator.Next(codes, numerator.DefaultConfig())
	}

	return s.checkEmailUnique(ctx, item)
}

func (s *Service) checkEmailUnique(ctx context.Context, item *Customer) error {
	if item.Email == nil || *item.Email == "" {
		return nil
	}
	if exists, _ := s.emailExists(ctx, *item.Email, item.ID); exists {
		return apperror.NewConflict("customer with this email already exists").
			WithDetail("email", *item.Email)
	}
	return nil
}

func (s *Service) emailExists(ctx context.Context, email string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}

// FindByEmail retrieves a customer by email address.
func (s *Service) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.repo.FindByEmail(ctx, email)
}
