package handlers

import (
	"github.com/gin-gonic/gin"

	"vendia/internal/domain"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the product catalog plus stock lookups.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a product handler.
func NewProductHandler(service *product.Service) *ProductHandler {
	crud := NewCatalogHandler(
		CatalogCRUD[*product.Product](service),
		func(req *dto.CreateProductRequest) (*product.Product, error) {
			return req.ToProduct()
		},
		func(req *dto.UpdateProductRequest, p *product.Product) (*product.Product, error) {
			return req.Apply(p)
		},
		func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	)
	return &ProductHandler{CatalogHandler: crud, service: service}
}

// LowStock handles GET /products/low-stock.
func (h *ProductHandler) LowStock(c *gin.Context) {
	filter := domain.DefaultListFilter()
	limit, ok := h.ParseIntQuery(c, "limit", filter.Limit)
	if !ok {
		return
	}
	offset, ok := h.ParseIntQuery(c, "offset", filter.Offset)
	if !ok {
		return
	}
	filter.Limit = limit
	filter.Offset = offset

	result, err := h.service.FindLowStock(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.ProductResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, dto.FromProduct(p))
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// RegisterRoutes mounts product routes on the group.
func (h *ProductHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/low-stock", h.LowStock)
	h.CatalogHandler.RegisterRoutes(group)
}
