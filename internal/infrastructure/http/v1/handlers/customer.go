package handlers

import (
	"vendia/internal/domain/catalogs/customer"
	"vendia/internal/infrastructure/http/v1/dto"
)

// CustomerHandler serves the customer catalog.
type CustomerHandler struct {
	*CatalogHandler[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
}

// NewCustomerHandler creates a customer handler.
func NewCustomerHandler(service *customer.Service) *CustomerHandler {
	crud := NewCatalogHandler(
		CatalogCRUD[*customer.Customer](service),
		func(req *dto.CreateCustomerRequest) (*customer.Customer, error) {
			return req.ToCustomer(), nil
		},
		func(req *dto.UpdateCustomerRequest, c *customer.Customer) (*customer.Customer, error) {
			return req.Apply(c), nil
		},
		func(c *customer.Customer) any {
			return dto.FromCustomer(c)
		},
	)
	return &CustomerHandler{CatalogHandler: crud}
}
