package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contestboard/internal/api/middleware"
	"contestboard/internal/pkg/flash"
)

// render wraps c.HTML so every view gets the pending flash messages and
// the signed-in user.
func render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = flash.Pop(c)
	if id, ok := middleware.UserID(c); ok {
		data["currentUserID"] = id
		data["currentUserName"] = middleware.UserName(c)
	}

	c.HTML(code, name, data)
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func redirectBack(c *gin.Context, fallback string) {
	ref := c.Request.Referer()
	if ref == "" {
		ref = fallback
	}

	c.Redirect(http.StatusFound, ref)
}

// positiveQueryInt falls back to def on absent, malformed or non-positive
// values rather than failing the request.
func positiveQueryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}

	return v
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}
