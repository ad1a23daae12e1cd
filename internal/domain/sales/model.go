// Package sales provides the Sale document and the draft composer used
// to build one. A Sale records a multi-line transaction with derived
// totals and a sequential human-readable document number.
package sales

import (
	"context"

	"vendia/internal/core/apperror"
	"vendia/internal/core/entity"
	"vendia/internal/core/id"
	"vendia/internal/core/types"
)

// Status describes the lifecycle state of a persisted sale.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValidStatus reports whether s is a known status.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Sale represents a persisted sales transaction.
type Sale struct {
	entity.Document

	// CustomerID references the customer; nil means a walk-in sale.
	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`

	Status Status `db:"status" json:"status"`

	// Totals (calculated from lines)
	Subtotal types.Money `db:"subtotal" json:"subtotal"`
	Discount types.Money `db:"discount" json:"discount"`
	Total    types.Money `db:"total" json:"total"`

	// Table part: sold items
	Lines []SaleLine `db:"-" json:"lines"`
}

// SaleLine represents one row of a sale.
type SaleLine struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID   id.ID          `db:"product_id" json:"productId"`
	ProductName string         `db:"product_name" json:"productName"`
	Quantity    types.Quantity `db:"quantity" json:"quantity"`
	UnitPrice   types.Money    `db:"unit_price" json:"unitPrice"`
	Subtotal    types.Money    `db:"subtotal" json:"subtotal"`
}

// NewSale creates a new sale document.
func NewSale(companyID string) *Sale {
	return &Sale{
		Document: entity.NewDocument(companyID),
		Status:   StatusCompleted,
		Subtotal: types.Zero(),
		Discount: types.Zero(),
		Total:    types.Zero(),
		Lines:    make([]SaleLine, 0),
	}
}

// RecalculateTotals re-derives subtotal and total from the lines.
// Total is subtotal minus discount and is intentionally not clamped
// at zero.
func (s *Sale) RecalculateTotals() {
	subtotal := types.Zero()
	for i := range s.Lines {
		s.Lines[i].Subtotal = s.Lines[i].Quantity.Mul(s.Lines[i].UnitPrice)
		subtotal = subtotal.Add(s.Lines[i].Subtotal)
	}
	s.Subtotal = subtotal
	s.Total = subtotal.Sub(s.Discount)
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if !IsValidStatus(s.Status) {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", string(s.Status))
	}

	if s.Discount.IsNegative() {
		return apperror.NewValidation("discount cannot be negative").
			WithDetail("field", "discount")
	}

	if len(s.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range s.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.UnitPrice.IsPositive() {
			return apperror.NewValidation("unit price must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}
