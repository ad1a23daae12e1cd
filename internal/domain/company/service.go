package company

import (
	"context"

	"vendia/internal/core/apperror"
	appctx "vendia/internal/core/context"
	"vendia/internal/core/id"
	"vendia/internal/core/tx"
	"vendia/internal/domain"
)

// Service provides business logic for the Company catalog.
// Regular users only ever see their own company; cross-company access
// is not exposed through this service.
type Service struct {
	*domain.CatalogService[*Company]
	repo Repository
}

// NewService creates a new Company service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Company]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "company",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

func ownCompanyID(ctx context.Context) (id.ID, error) {
	raw := appctx.GetCompanyID(ctx)
	if raw == "" {
		return id.Nil(), apperror.NewUnauthorized("no company in context")
	}
	companyID, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewUnauthorized("invalid company in context")
	}
	return companyID, nil
}

// GetOwn returns the company of the authenticated user.
func (s *Service) GetOwn(ctx context.Context) (*Company, error) {
	companyID, err := ownCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, companyID)
}

// UpdateOwn updates the profile of the authenticated user's company.
// The target ID is taken from the context, never from the payload.
func (s *Service) UpdateOwn(ctx context.Context, updated *Company) error {
	companyID, err := ownCompanyID(ctx)
	if err != nil {
		return err
	}

	current, err := s.GetByID(ctx, companyID)
	if err != nil {
		return err
	}

	updated.ID = current.ID
	updated.Code = current.Code
	updated.Version = current.Version

	return s.Update(ctx, updated)
}
