package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"vendia/internal/core/id"
	"vendia/internal/domain"
	"vendia/internal/infrastructure/http/v1/dto"
)

// CatalogCRUD is the slice of a catalog service the generic handler needs.
type CatalogCRUD[T any] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, entityID id.ID) (T, error)
	GetByCode(ctx context.Context, code string) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, entityID id.ID) error
	SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error)
}

// CatalogHandler serves the standard CRUD surface of one catalog. The
// three mapper funcs adapt it to a concrete entity and its DTOs.
type CatalogHandler[T any, CreateReq any, UpdateReq any] struct {
	BaseHandler

	service     CatalogCRUD[T]
	toEntity    func(*CreateReq) (T, error)
	applyUpdate func(*UpdateReq, T) (T, error)
	toResponse  func(T) any
}

// NewCatalogHandler creates a CRUD handler for one catalog type.
func NewCatalogHandler[T any, CreateReq any, UpdateReq any](
	service CatalogCRUD[T],
	toEntity func(*CreateReq) (T, error),
	applyUpdate func(*UpdateReq, T) (T, error),
	toResponse func(T) any,
) *CatalogHandler[T, CreateReq, UpdateReq] {
	return &CatalogHandler[T, CreateReq, UpdateReq]{
		service:     service,
		toEntity:    toEntity,
		applyUpdate: applyUpdate,
		toResponse:  toResponse,
	}
}

// Create handles POST /.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) Create(c *gin.Context) {
	var req CreateReq
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.toEntity(&req)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.toResponse(entity))
}

// GetByID handles GET /:id.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) GetByID(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.toResponse(entity))
}

// GetByCode handles GET /by-code/:code.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) GetByCode(c *gin.Context) {
	entity, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.toResponse(entity))
}

// Update handles PUT /:id. The request carries the expected version;
// a stale version is rejected as a concurrent modification.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) Update(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req UpdateReq
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	entity, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	entity, err = h.applyUpdate(&req, entity)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.Update(ctx, entity); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.toResponse(entity))
}

// Delete handles DELETE /:id.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) Delete(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// SetDeletionMark handles PATCH /:id/deletion-mark.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) SetDeletionMark(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.SetDeletionMarkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDeletionMark(c.Request.Context(), entityID, req.Marked); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET / with search, pagination, and ordering.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) List(c *gin.Context) {
	filter, ok := h.parseListFilter(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, h.toResponse(item))
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

func (h *CatalogHandler[T, CreateReq, UpdateReq]) parseListFilter(c *gin.Context) (domain.ListFilter, bool) {
	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"
	if orderBy := c.Query("orderBy"); orderBy != "" {
		filter.OrderBy = orderBy
	}

	limit, ok := h.ParseIntQuery(c, "limit", filter.Limit)
	if !ok {
		return domain.ListFilter{}, false
	}
	offset, ok := h.ParseIntQuery(c, "offset", filter.Offset)
	if !ok {
		return domain.ListFilter{}, false
	}
	filter.Limit = limit
	filter.Offset = offset

	return filter, true
}

// RegisterRoutes mounts the standard catalog CRUD routes on the group.
func (h *CatalogHandler[T, CreateReq, UpdateReq]) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/by-code/:code", h.GetByCode)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.PATCH("/:id/deletion-mark", h.SetDeletionMark)
}
