package dto

import (
	"vendia/internal/domain/catalogs/customer"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	CatalogResponse
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// FromCustomer creates CustomerResponse from domain entity.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Notes:           c.Notes,
	}
}

// CreateCustomerRequest for creating customers.
type CreateCustomerRequest struct {
	Code    string  `json:"code"`
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// ToCustomer converts the request to a domain entity.
func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	c := customer.NewCustomer(r.Code, r.Name)
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.Notes = r.Notes
	return c
}

// UpdateCustomerRequest for updating customers.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
	Version int     `json:"version" binding:"required,min=1"`
}

// Apply merges the request onto an existing customer.
func (r *UpdateCustomerRequest) Apply(c *customer.Customer) *customer.Customer {
	if r.Name != nil {
		c.Name = *r.Name
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
	if r.Notes != nil {
		c.Notes = r.Notes
	}
	c.Version = r.Version
	return c
}
