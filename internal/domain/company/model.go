// Package company provides the Company catalog: the business profile
// that owns products, users, and sales. Every authenticated user
// belongs to exactly one company.
package company

import (
	"context"
	"strings"

	"vendia/internal/core/apperror"
	"vendia/internal/core/entity"
)

// Plan identifies the subscription tier of a company.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanBasic    Plan = "basic"
	PlanPremium  Plan = "premium"
	PlanBusiness Plan = "business"
)

// Company represents a business profile.
type Company struct {
	entity.Catalog

	// Description is an optional profile description
	Description *string `db:"description" json:"description,omitempty"`

	// Plan is the subscription tier
	Plan Plan `db:"plan" json:"plan"`

	// TaxID is the fiscal identification number
	TaxID *string `db:"tax_id" json:"taxId,omitempty"`

	// Email is the contact email address
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the contact phone number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the registered address
	Address *string `db:"address" json:"address,omitempty"`
}

// NewCompany creates a new Company with required fields.
func NewCompany(code, name string) *Company {
	return &Company{
		Catalog: entity.NewCatalog(code, name),
		Plan:    PlanFree,
	}
}

// Validate implements entity.Validatable interface.
func (c *Company) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidPlan(c.Plan) {
		return apperror.NewValidation("invalid subscription plan").
			WithDetail("field", "plan").
			WithDetail("value", string(c.Plan))
	}

	if c.Email != nil && *c.Email != "" && !strings.Contains(*c.Email, "@") {
		return apperror.NewValidation("invalid email address").
			WithDetail("field", "email").
			WithDetail("value", *c.Email)
	}

	return nil
}

func isValidPlan(p Plan) bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium, PlanBusiness:
		return true
	}
	return false
}
