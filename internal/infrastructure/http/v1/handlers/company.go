package handlers

import (
	"github.com/gin-gonic/gin"

	"vendia/internal/domain/company"
	"vendia/internal/infrastructure/http/v1/dto"
)

// CompanyHandler serves the caller's company profile.
type CompanyHandler struct {
	BaseHandler
	service *company.Service
}

// NewCompanyHandler creates a company handler.
func NewCompanyHandler(service *company.Service) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// GetOwn handles GET /company.
func (h *CompanyHandler) GetOwn(c *gin.Context) {
	own, err := h.service.GetOwn(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCompany(own))
}

// UpdateOwn handles PUT /company.
func (h *CompanyHandler) UpdateOwn(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	own, err := h.service.GetOwn(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.Apply(own)
	if err := h.service.UpdateOwn(ctx, own); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCompany(own))
}

// RegisterRoutes mounts company routes on the group. Updates require
// the admin role; gating happens at the router.
func (h *CompanyHandler) RegisterRoutes(group *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	group.GET("", h.GetOwn)
	group.PUT("", adminOnly, h.UpdateOwn)
}
