package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"vendia/internal/core/apperror"
	"vendia/internal/core/id"
	"vendia/internal/domain"
	"vendia/internal/domain/sales"
	"vendia/internal/infrastructure/http/v1/dto"
)

// SalesHandler serves the sale document lifecycle.
type SalesHandler struct {
	BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a sales handler.
func NewSalesHandler(service *sales.Service) *SalesHandler {
	return &SalesHandler{service: service}
}

// applyRequest fills the draft lines and header from the request. The
// catalog snapshot resolves product names and prices at edit time; an
// explicit unit price in the request overrides the catalog price.
func (h *SalesHandler) applyRequest(c *gin.Context, draft *sales.Draft, req *dto.SaleRequest) bool {
	snapshot, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return false
	}

	for i, line := range req.Lines {
		ref, err := id.Parse(line.ProductID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productId: "+line.ProductID))
			return false
		}

		draft.AddLine()
		draft.SetLineItem(i, ref, snapshot)
		if line.Quantity != nil {
			draft.SetLineQuantity(i, *line.Quantity)
		}
		if line.UnitPrice != nil {
			draft.SetLineUnitPrice(i, *line.UnitPrice)
		}
	}

	if req.CustomerID != nil && *req.CustomerID != "" {
		customerID, err := id.Parse(*req.CustomerID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId: "+*req.CustomerID))
			return false
		}
		draft.SetCustomer(&customerID)
	}
	if req.Discount != nil {
		draft.SetDiscount(*req.Discount)
	}
	draft.SetNotes(req.Notes)

	return true
}

// Submit handles POST /sales.
func (h *SalesHandler) Submit(c *gin.Context) {
	var req dto.SaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	draft := sales.NewDraft()
	if !h.applyRequest(c, draft, &req) {
		return
	}

	sale, err := h.service.Submit(c.Request.Context(), draft)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromSale(sale))
}

// Resubmit handles PUT /sales/:id. The stored sale is reopened as a
// draft, its lines replaced with the request content, and submitted
// again under the same document number.
func (h *SalesHandler) Resubmit(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	draft, err := h.service.OpenForEdit(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	for i := len(draft.Lines) - 1; i >= 0; i-- {
		draft.RemoveLine(i)
	}
	draft.SetCustomer(nil)
	if !h.applyRequest(c, draft, &req) {
		return
	}

	sale, err := h.service.Resubmit(c.Request.Context(), draft)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(sale))
}

// GetByID handles GET /sales/:id.
func (h *SalesHandler) GetByID(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	sale, err := h.service.GetByID(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSale(sale))
}

// List handles GET /sales.
func (h *SalesHandler) List(c *gin.Context) {
	filter, ok := h.parseListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.SaleResponse, 0, len(result.Items))
	for _, sale := range result.Items {
		items = append(items, dto.FromSale(sale))
	}

	h.OK(c, dto.SaleListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Cancel handles POST /sales/:id/cancel.
func (h *SalesHandler) Cancel(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), saleID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Delete handles DELETE /sales/:id.
func (h *SalesHandler) Delete(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), saleID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

func (h *SalesHandler) parseListFilter(c *gin.Context) (sales.ListFilter, bool) {
	filter := sales.ListFilter{ListFilter: domain.DefaultListFilter()}
	filter.Search = c.Query("search")
	filter.OrderBy = c.Query("orderBy")

	limit, ok := h.ParseIntQuery(c, "limit", filter.Limit)
	if !ok {
		return sales.ListFilter{}, false
	}
	offset, ok := h.ParseIntQuery(c, "offset", filter.Offset)
	if !ok {
		return sales.ListFilter{}, false
	}
	filter.Limit = limit
	filter.Offset = offset

	if raw := c.Query("status"); raw != "" {
		status := sales.Status(raw)
		if !sales.IsValidStatus(status) {
			h.Error(c, apperror.NewValidation("unknown status: "+raw))
			return sales.ListFilter{}, false
		}
		filter.Status = &status
	}
	if raw := c.Query("customerId"); raw != "" {
		customerID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId: "+raw))
			return sales.ListFilter{}, false
		}
		filter.CustomerID = &customerID
	}
	if raw := c.Query("dateFrom"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateFrom: "+raw))
			return sales.ListFilter{}, false
		}
		filter.DateFrom = &from
	}
	if raw := c.Query("dateTo"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateTo: "+raw))
			return sales.ListFilter{}, false
		}
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	return filter, true
}

// RegisterRoutes mounts sale document routes on the group.
func (h *SalesHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Submit)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Resubmit)
	group.POST("/:id/cancel", h.Cancel)
	group.DELETE("/:id", h.Delete)
}
