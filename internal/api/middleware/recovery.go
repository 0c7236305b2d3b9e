package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/streamlinelabs/backend/internal/api/dto/common"
	"github.com/streamlinelabs/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 response without leaking
// internal detail to the client
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := logging.GetLogger()
				logger.Error("[PANIC] %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, err, debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgServerError))
			}
		}()

		c.Next()
	}
}
