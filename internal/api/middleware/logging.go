package middleware

import (
	"time"

	"portfolio-api/internal/logging"
	"portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request with status, latency and client IP
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		logger := logging.GetLogger()
		logger.Info("%3d | %13v | %15s | %-7s %s",
			c.Writer.Status(),
			latency,
			utils.GetRealIP(c),
			method,
			path,
		)
	}
}
