package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/platform/logging"
)

const (
	// HeaderCorrelationID carries an id that spans several requests, e.g.
	// a page load and the API calls a client makes afterwards.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key of the correlation id.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID propagates X-Correlation-ID the same way RequestID
// handles X-Request-ID.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		enrichers: []func(context.Context, string) context.Context{
			ContextWithCorrelationID,
			logging.WithCorrelationID,
		},
	})
}

// GetCorrelationID returns the correlation id, or "".
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID is GetCorrelationID with "unknown" as the fallback.
func MustGetCorrelationID(c *gin.Context) string {
	if id := GetCorrelationID(c); id != "" {
		return id
	}

	return "unknown"
}
