package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vendia/internal/core/apperror"
	"vendia/internal/core/id"
)

// BaseHandler provides common helpers for HTTP handlers.
type BaseHandler struct{}

// Error records the error on the gin context and aborts. The error
// middleware turns it into the JSON response.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// BindJSON binds the request body and reports validation errors.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return false
	}
	return true
}

// BindQuery binds query parameters and reports validation errors.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return false
	}
	return true
}

// ParseID parses the named path parameter as an entity identifier.
func (h *BaseHandler) ParseID(c *gin.Context, param string) (id.ID, bool) {
	parsed, err := id.Parse(c.Param(param))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid "+param+" parameter"))
		return id.ID{}, false
	}
	return parsed, true
}

// ParseIntQuery parses an optional integer query parameter.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid "+name+" parameter"))
		return 0, false
	}
	return value, true
}

// Created sends 201 with the payload.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 with the payload.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends 204.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success sends 200 with a message envelope.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
