package middleware

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is the fault boundary for unexpected failures. Handlers
// attach errors with c.Error; everything that reaches here gets logged and
// answered with the generic error page.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			zap.L().Error("request failed",
				zap.String("request_id", requestid.Get(c)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(e.Err),
			)
		}

		if c.Writer.Written() {
			return
		}

		c.HTML(http.StatusInternalServerError, "errors/500", gin.H{})
	}
}
