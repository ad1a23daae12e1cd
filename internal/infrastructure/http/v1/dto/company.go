package dto

import (
	"vendia/internal/domain/company"
)

// CompanyResponse represents the company profile in API responses.
type CompanyResponse struct {
	CatalogResponse
	Description *string `json:"description,omitempty"`
	Plan        string  `json:"plan"`
	TaxID       *string `json:"taxId,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// FromCompany creates CompanyResponse from domain entity.
func FromCompany(c *company.Company) CompanyResponse {
	return CompanyResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Description:     c.Description,
		Plan:            string(c.Plan),
		TaxID:           c.TaxID,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
	}
}

// UpdateCompanyRequest updates the caller's company profile.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	TaxID       *string `json:"taxId"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// Apply merges the request onto the current company profile.
func (r *UpdateCompanyRequest) Apply(c *company.Company) *company.Company {
	c.Name = r.Name
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.TaxID != nil {
		c.TaxID = r.TaxID
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	return c
}
