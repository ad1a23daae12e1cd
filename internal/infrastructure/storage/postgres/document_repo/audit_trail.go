package document_repo

import (
	"context"

	"vendia/internal/domain/sales"
	"vendia/internal/infrastructure/storage/postgres"
)

// SaleAuditTrail adapts the audit service to the sales domain.
type SaleAuditTrail struct {
	audit *postgres.AuditService
}

var _ sales.AuditTrail = (*SaleAuditTrail)(nil)

// NewSaleAuditTrail creates an audit trail for sale mutations.
func NewSaleAuditTrail(audit *postgres.AuditService) *SaleAuditTrail {
	return &SaleAuditTrail{audit: audit}
}

// RecordSale stores a snapshot of the sale after a mutation.
func (t *SaleAuditTrail) RecordSale(ctx context.Context, action string, sale *sales.Sale) error {
	return t.audit.LogSnapshot(ctx, "sale", sale.ID, postgres.AuditAction(action), sale)
}
