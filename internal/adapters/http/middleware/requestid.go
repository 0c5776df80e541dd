// Package middleware contains the gin middleware of the blog server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request id.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key of the request id.
	ContextKeyRequestID = "request_id"
)

// RequestID reuses the client's X-Request-ID or generates one. The id is
// echoed in the response, stored on the request context and attached to
// the context logger.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderRequestID,
		contextKey: ContextKeyRequestID,
		enrichers: []func(context.Context, string) context.Context{
			ContextWithRequestID,
			logging.WithRequestID,
		},
	})
}

// GetRequestID returns the request id, or "" before RequestID ran.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// MustGetRequestID is GetRequestID with "unknown" as the fallback.
func MustGetRequestID(c *gin.Context) string {
	if id := GetRequestID(c); id != "" {
		return id
	}

	return "unknown"
}
