package sales

import (
	"context"
	"fmt"
	"time"

	"vendia/internal/core/apperror"
	appctx "vendia/internal/core/context"
	"vendia/internal/core/id"
	"vendia/internal/core/numerator"
	"vendia/internal/core/tx"
	"vendia/internal/core/types"
	"vendia/internal/domain"
	"vendia/pkg/logger"
)

// ProductGateway is the slice of the product catalog the sales service
// needs: reference resolution for submission and stock adjustment.
type ProductGateway interface {
	// Lookup resolves a product reference to a catalog entry.
	Lookup(ctx context.Context, productID id.ID) (CatalogEntry, error)

	// Snapshot returns the active catalog as an in-memory snapshot for
	// the draft composer.
	Snapshot(ctx context.Context) (CatalogSnapshot, error)

	// AdjustStock changes stock by delta (negative for sales).
	AdjustStock(ctx context.Context, productID id.ID, delta types.Quantity) error
}

// AuditTrail records sale mutations for later inspection.
type AuditTrail interface {
	RecordSale(ctx context.Context, action string, sale *Sale) error
}

// Service provides business operations for sale documents.
type Service struct {
	repo      Repository
	products  ProductGateway
	txManager tx.Manager
	numCfg    numerator.Config
	audit     AuditTrail
}

// NewService creates a new sales service.
func NewService(repo Repository, products ProductGateway, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		txManager: txManager,
		numCfg:    numerator.DefaultConfig(),
	}
}

// SetAuditTrail enables audit logging of sale mutations.
func (s *Service) SetAuditTrail(audit AuditTrail) {
	s.audit = audit
}

// recordAudit writes an audit entry. Audit failures never fail the
// business operation.
func (s *Service) recordAudit(ctx context.Context, action string, sale *Sale) {
	if s.audit == nil {
		return
	}
	if err := s.audit.RecordSale(ctx, action, sale); err != nil {
		logger.Warn(ctx, "audit record failed",
			"action", action,
			"saleId", sale.ID,
			"error", err)
	}
}

// Catalog returns a snapshot of the product catalog for draft editing.
func (s *Service) Catalog(ctx context.Context) (CatalogSnapshot, error) {
	return s.products.Snapshot(ctx)
}

// AllocateNumber returns the next free document number from the
// company's visible sales history. Re-run whenever a new draft is
// opened; never used when editing an existing sale.
func (s *Service) AllocateNumber(ctx context.Context, companyID string) (string, error) {
	history, err := s.repo.ListNumbers(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("list document numbers: %w", err)
	}
	return numerator.Next(history, s.numCfg), nil
}

func submissionContext(ctx context.Context, now time.Time) (SubmissionContext, error) {
	user := appctx.GetUser(ctx)
	if user == nil || user.CompanyID == "" {
		return SubmissionContext{}, apperror.NewUnauthorized("no user in context")
	}
	return SubmissionContext{
		UserID:    user.UserID,
		CompanyID: user.CompanyID,
		Now:       now,
	}, nil
}

// resolveLines verifies every line reference against the catalog.
// An unresolvable reference is a structured resolution failure, not a
// validation failure: the draft itself may be well-formed.
func (s *Service) resolveLines(ctx context.Context, draft *Draft) error {
	for i, line := range draft.Lines {
		if line.ItemRef == nil {
			continue // Validate reports this with the right line number
		}
		if _, err := s.products.Lookup(ctx, *line.ItemRef); err != nil {
			return apperror.NewResolution("product", line.ItemRef.String()).
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// Submit validates a new draft, allocates its document number, stores
// the sale, and adjusts product stock. On any failure the draft is left
// untouched so the user can correct and retry.
func (s *Service) Submit(ctx context.Context, draft *Draft) (*Sale, error) {
	sctx, err := submissionContext(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveLines(ctx, draft); err != nil {
		return nil, err
	}

	if draft.Number == "" {
		number, err := s.AllocateNumber(ctx, sctx.CompanyID)
		if err != nil {
			return nil, err
		}
		draft.Number = number
	}

	sale, err := draft.ToSale(sctx)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, sale); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		if err := s.repo.SaveLines(ctx, sale.ID, sale.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		for _, line := range sale.Lines {
			if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity.Neg()); err != nil {
				return fmt.Errorf("adjust stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperror.NewSubmission("sale was not stored", err)
	}

	logger.Info(ctx, "sale created",
		"id", sale.ID,
		"number", sale.Number,
		"total", sale.Total)
	s.recordAudit(ctx, "create", sale)

	return sale, nil
}

// Resubmit applies an edited draft back onto its persisted sale. The
// document number stays fixed; stock adjustments are reconciled against
// the previously stored lines.
func (s *Service) Resubmit(ctx context.Context, draft *Draft) (*Sale, error) {
	if draft.IsNew() {
		return nil, apperror.NewValidation("draft has no persisted sale to update")
	}

	sctx, err := submissionContext(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveLines(ctx, draft); err != nil {
		return nil, err
	}

	sale, err := draft.ToSale(sctx)
	if err != nil {
		return nil, err
	}

	// The stored status decides whether editing is allowed at all: a
	// cancelled sale has already returned its stock, so applying a new
	// set of lines would corrupt the levels.
	stored, err := s.GetByID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	if stored.Status == StatusCancelled {
		return nil, apperror.NewBusinessRule(apperror.CodeBusinessRule, "cancelled sales cannot be resubmitted").
			WithDetail("id", sale.ID.String())
	}
	previous := stored.Lines

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, sale); err != nil {
			return fmt.Errorf("update sale: %w", err)
		}
		if err := s.repo.SaveLines(ctx, sale.ID, sale.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		// Return the previously reserved stock, then take the new amounts.
		for _, line := range previous {
			if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("restore stock: %w", err)
			}
		}
		for _, line := range sale.Lines {
			if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity.Neg()); err != nil {
				return fmt.Errorf("adjust stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if apperror.IsConcurrentModification(err) {
			return nil, err
		}
		return nil, apperror.NewSubmission("sale was not updated", err)
	}

	logger.Info(ctx, "sale updated",
		"id", sale.ID,
		"number", sale.Number,
		"total", sale.Total)
	s.recordAudit(ctx, "update", sale)

	return sale, nil
}

// GetByID retrieves a sale with lines.
func (s *Service) GetByID(ctx context.Context, saleID id.ID) (*Sale, error) {
	sale, err := s.repo.GetByID(ctx, saleID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	sale.Lines = lines

	return sale, nil
}

// OpenForEdit loads a sale and returns a draft seeded from it.
func (s *Service) OpenForEdit(ctx context.Context, saleID id.ID) (*Draft, error) {
	sale, err := s.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return DraftFromSale(sale), nil
}

// Cancel marks a sale cancelled and returns its stock.
func (s *Service) Cancel(ctx context.Context, saleID id.ID) error {
	sale, err := s.GetByID(ctx, saleID)
	if err != nil {
		return err
	}

	if sale.Status == StatusCancelled {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "sale is already cancelled").
			WithDetail("id", saleID.String())
	}

	sale.Status = StatusCancelled

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, sale); err != nil {
			return fmt.Errorf("update sale: %w", err)
		}
		for _, line := range sale.Lines {
			if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("restore stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale cancelled", "id", sale.ID, "number", sale.Number)
	s.recordAudit(ctx, "cancel", sale)
	return nil
}

// Delete soft-deletes a sale. Cancelled sales only; completed sales
// must be cancelled first so stock stays consistent.
func (s *Service) Delete(ctx context.Context, saleID id.ID) error {
	sale, err := s.GetByID(ctx, saleID)
	if err != nil {
		return err
	}

	if sale.Status != StatusCancelled {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule, "only cancelled sales can be deleted").
			WithDetail("status", string(sale.Status))
	}

	if err := s.repo.Delete(ctx, saleID); err != nil {
		return err
	}

	s.recordAudit(ctx, "delete", sale)
	return nil
}

// List retrieves sales with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	if filter.CompanyID == "" {
		filter.CompanyID = appctx.GetCompanyID(ctx)
	}
	return s.repo.List(ctx, filter)
}
