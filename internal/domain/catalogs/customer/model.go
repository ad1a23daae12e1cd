// Package customer provides the Customer catalog: the clients a company
// sells to.
package customer

import (
	"context"
	"strings"

	"vendia/internal/core/apperror"
	"vendia/internal/core/entity"
)

// Customer represents a client with contact details.
type Customer struct {
	entity.Catalog

	// CompanyID is the owning company. The repository stamps it on
	// create and filters every query by it.
	CompanyID string `db:"company_id" json:"companyId"`

	// Email is the contact email address
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the contact phone number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the postal address
	Address *string `db:"address" json:"address,omitempty"`

	// Notes holds free-form remarks about the client
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// NewCustomer creates a new Customer with required fields.
func NewCustomer(code, name string) *Customer {
	return &Customer{
		Catalog: entity.NewCatalog(code, name),
	}
}

// Validate implements entity.Validatable interface.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Email != nil && *c.Email != "" {
		if !strings.Contains(*c.Email, "@") {
			return apperror.NewValidation("invalid email address").
				WithDetail("field", "email").
				WithDetail("value", *c.Email)
		}
	}

	return nil
}
