package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendia/internal/core/apperror"
	appctx "vendia/internal/core/context"
	"vendia/internal/infrastructure/http/v1/dto"
	"vendia/pkg/logger"
)

// ErrorHandler is the single producer of JSON error responses. Handlers
// attach errors via c.Error; this middleware maps the last one to a
// status and body after the chain finishes.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		ctx := c.Request.Context()

		resp := dto.ErrorResponse{
			Code:    apperror.CodeInternal,
			Message: "internal server error",
		}
		if appErr, ok := apperror.AsAppError(err); ok {
			resp.Code = appErr.Code
			resp.Message = appErr.Message
			resp.Details = appErr.Details
		}

		status := apperror.GetHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"requestId", appctx.GetRequestID(ctx))
		}

		if !c.Writer.Written() {
			c.JSON(status, resp)
		}
	}
}
