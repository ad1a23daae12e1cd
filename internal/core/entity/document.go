package entity

import (
	"context"
	"time"

	"vendia/internal/core/apperror"
)

// Document is the base type for business transactions.
// Examples: Sale.
type Document struct {
	BaseDocument

	// Number is the human-facing sequential document number. Assigned once
	// from the visible history when the document is first stored and fixed
	// afterwards.
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// CompanyID is the owning company
	CompanyID string `db:"company_id" json:"companyId"`

	// Notes is an optional user comment
	Notes string `db:"notes" json:"notes,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument(companyID string) Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
		CompanyID:    companyID,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.CompanyID == "" {
		return apperror.NewValidation("company is required").
			WithDetail("field", "companyId")
	}

	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}
