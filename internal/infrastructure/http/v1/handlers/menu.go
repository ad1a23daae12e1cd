package handlers

import (
	"github.com/gin-gonic/gin"

	appctx "vendia/internal/core/context"
	"vendia/internal/core/security"
)

// MenuHandler serves the navigation entries visible to the caller's role.
type MenuHandler struct {
	BaseHandler
	policy *security.MenuPolicy
}

// NewMenuHandler creates a menu handler.
func NewMenuHandler(policy *security.MenuPolicy) *MenuHandler {
	return &MenuHandler{policy: policy}
}

// Menu handles GET /menu.
func (h *MenuHandler) Menu(c *gin.Context) {
	role := ""
	if user := appctx.GetUser(c.Request.Context()); user != nil {
		role = user.Role
	}

	h.OK(c, gin.H{"items": h.policy.Visible(role)})
}
