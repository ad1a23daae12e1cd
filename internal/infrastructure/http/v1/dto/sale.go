package dto

import (
	"time"

	"vendia/internal/core/types"
	"vendia/internal/domain/sales"
)

// SaleLineRequest is one row of a submitted sale.
type SaleLineRequest struct {
	ProductID string          `json:"productId" binding:"required,uuid"`
	Quantity  *types.Quantity `json:"quantity"`

	// UnitPrice overrides the catalog price when set.
	UnitPrice *types.Money `json:"unitPrice"`
}

// SaleRequest carries the editable content of a sale. Used for both
// creation and edits; totals are always derived server-side.
type SaleRequest struct {
	CustomerID *string           `json:"customerId"`
	Notes      string            `json:"notes"`
	Discount   *types.Money      `json:"discount"`
	Lines      []SaleLineRequest `json:"lines"`
}

// SaleLineResponse is one stored row of a sale.
type SaleLineResponse struct {
	LineID      string         `json:"lineId"`
	LineNo      int            `json:"lineNo"`
	ProductID   string         `json:"productId"`
	ProductName string         `json:"productName"`
	Quantity    types.Quantity `json:"quantity"`
	UnitPrice   types.Money    `json:"unitPrice"`
	Subtotal    types.Money    `json:"subtotal"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID         string             `json:"id"`
	Number     string             `json:"number"`
	Date       time.Time          `json:"date"`
	CompanyID  string             `json:"companyId"`
	CustomerID *string            `json:"customerId,omitempty"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes,omitempty"`
	Subtotal   types.Money        `json:"subtotal"`
	Discount   types.Money        `json:"discount"`
	Total      types.Money        `json:"total"`
	Lines      []SaleLineResponse `json:"lines"`
	Version    int                `json:"version"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	CreatedBy  string             `json:"createdBy,omitempty"`
	UpdatedBy  string             `json:"updatedBy,omitempty"`
}

// FromSale creates SaleResponse from domain entity.
func FromSale(s *sales.Sale) SaleResponse {
	resp := SaleResponse{
		ID:        s.ID.String(),
		Number:    s.Number,
		Date:      s.Date,
		CompanyID: s.CompanyID,
		Status:    string(s.Status),
		Notes:     s.Notes,
		Subtotal:  s.Subtotal,
		Discount:  s.Discount,
		Total:     s.Total,
		Lines:     make([]SaleLineResponse, 0, len(s.Lines)),
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		CreatedBy: s.CreatedBy,
		UpdatedBy: s.UpdatedBy,
	}

	if s.CustomerID != nil {
		customerID := s.CustomerID.String()
		resp.CustomerID = &customerID
	}

	for _, line := range s.Lines {
		resp.Lines = append(resp.Lines, SaleLineResponse{
			LineID:      line.LineID.String(),
			LineNo:      line.LineNo,
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	return resp
}

// SaleListResponse is a list of sales without lines.
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	TotalCount int64          `json:"totalCount"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
