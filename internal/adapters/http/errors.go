package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/adapters/http/dto"
	"github.com/jsamuelsen/project-blog/internal/adapters/http/handlers"
)

const apiPrefix = "/api"

// isAPIRequest reports whether the request targets the JSON API, which
// answers errors with the envelope instead of an HTML page.
func isAPIRequest(c *gin.Context) bool {
	path := c.Request.URL.Path

	return path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/")
}

// noRoute answers unmatched API paths with a NOT_FOUND envelope and
// everything else with the blog's 404 page.
func noRoute(blog *handlers.BlogHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAPIRequest(c) {
			dto.HandleErrorCode(c, dto.ErrorCodeNotFound, "resource not found")
			return
		}

		blog.NotFound(c)
	}
}

// panicResponse picks the 500 body after a recovered panic.
func panicResponse(blog *handlers.BlogHandler) func(c *gin.Context) {
	return func(c *gin.Context) {
		if isAPIRequest(c) {
			dto.HandleErrorCode(c, dto.ErrorCodeInternal, "an internal error occurred")
			return
		}

		blog.ServerError(c)
	}
}
