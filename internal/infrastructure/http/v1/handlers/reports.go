package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vendia/internal/domain"
	"vendia/internal/domain/catalogs/customer"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/domain/reporting"
	"vendia/internal/infrastructure/export"
	"vendia/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves sales reports and their file exports.
type ReportsHandler struct {
	BaseHandler
	service   *reporting.Service
	products  *product.Service
	customers *customer.Service
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(service *reporting.Service, products *product.Service, customers *customer.Service) *ReportsHandler {
	return &ReportsHandler{
		service:   service,
		products:  products,
		customers: customers,
	}
}

// Summary handles GET /reports/summary: the dashboard rollup of catalog
// sizes and all-time plus current-month sales figures.
func (h *ReportsHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	one := domain.DefaultListFilter()
	one.Limit = 1

	productCount, err := h.products.List(ctx, one)
	if err != nil {
		h.Error(c, err)
		return
	}
	customerCount, err := h.customers.List(ctx, one)
	if err != nil {
		h.Error(c, err)
		return
	}

	// All-time window; zero-dated records are excluded by aggregation
	// anyway, so the epoch lower bound loses nothing.
	summary, err := h.service.Totals(ctx, reporting.Query{
		Kind:  reporting.RangeCustom,
		Start: time.Unix(0, 0).UTC(),
		End:   time.Now().UTC(),
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.GeneralSummaryResponse{
		Products:        productCount.TotalCount,
		Customers:       customerCount.TotalCount,
		Sales:           summary.Count,
		TotalAmount:     summary.Sum,
		ThisMonthSales:  summary.ThisMonthCount,
		ThisMonthAmount: summary.ThisMonthAmount,
	})
}

// Sales handles GET /reports/sales.
func (h *ReportsHandler) Sales(c *gin.Context) {
	report, ok := h.generate(c)
	if !ok {
		return
	}

	h.OK(c, report)
}

// ExportSales handles GET /reports/sales/export. Streams the report as
// an XLSX attachment.
func (h *ReportsHandler) ExportSales(c *gin.Context) {
	report, ok := h.generate(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("sales-%s.xlsx", report.Window.Start.Format(time.DateOnly))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := export.SalesXLSX(c.Writer, report); err != nil {
		h.Error(c, err)
	}
}

func (h *ReportsHandler) generate(c *gin.Context) (*reporting.Report, bool) {
	var req dto.SalesReportQuery
	if !h.BindQuery(c, &req) {
		return nil, false
	}

	query, err := req.ToQuery()
	if err != nil {
		h.Error(c, err)
		return nil, false
	}

	report, err := h.service.Generate(c.Request.Context(), query)
	if err != nil {
		h.Error(c, err)
		return nil, false
	}

	return report, true
}

// RegisterRoutes mounts report routes on the group.
func (h *ReportsHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/sales", h.Sales)
	group.GET("/sales/export", h.ExportSales)
}
