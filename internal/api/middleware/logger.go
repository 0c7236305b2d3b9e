package middleware

import (
	"time"

	"github.com/streamlinelabs/backend/internal/logging"
	"github.com/streamlinelabs/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with method, path, client IP,
// status and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger := logging.GetLogger()
		logger.Info("%s %s | %s | %d | %s",
			c.Request.Method,
			c.Request.URL.Path,
			utils.ClientIP(c),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
