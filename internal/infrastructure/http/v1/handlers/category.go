package handlers

import (
	"vendia/internal/domain/catalogs/category"
	"vendia/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves the category catalog.
type CategoryHandler struct {
	*CatalogHandler[*category.Category, dto.CreateCategoryRequest, dto.UpdateCategoryRequest]
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(service *category.Service) *CategoryHandler {
	crud := NewCatalogHandler(
		CatalogCRUD[*category.Category](service),
		func(req *dto.CreateCategoryRequest) (*category.Category, error) {
			return req.ToCategory(), nil
		},
		func(req *dto.UpdateCategoryRequest, c *category.Category) (*category.Category, error) {
			return req.Apply(c), nil
		},
		func(c *category.Category) any {
			return dto.FromCategory(c)
		},
	)
	return &CategoryHandler{CatalogHandler: crud}
}
