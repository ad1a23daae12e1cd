package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"vendia/pkg/logger"
)

// Logger logs one line per finished request.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"clientIp", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		log.WithContext(c.Request.Context()).Infow("http request", fields...)
	}
}
