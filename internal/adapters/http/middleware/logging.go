package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/platform/logging"
)

// DefaultSkipPrefixes are the path prefixes Logging ignores: probes and
// static assets.
var DefaultSkipPrefixes = []string{"/-/", "/static/"}

// ContextLogger stores logger on the request context so that the id
// middleware and handlers further down enrich and use it.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}

// Logging logs one line per completed request. Paths under any of
// skipPrefixes are not logged; nil means DefaultSkipPrefixes.
//
// 5xx responses log at ERROR, 4xx at WARN, everything else at INFO.
// Unknown pages (404) stay at INFO since crawlers produce plenty of them.
func Logging(logger *slog.Logger, skipPrefixes ...string) gin.HandlerFunc {
	if len(skipPrefixes) == 0 {
		skipPrefixes = DefaultSkipPrefixes
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if hasAnyPrefix(path, skipPrefixes) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		ctxLogger := loggerFor(c, logger)

		latency := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fullPath := path
		if c.Request.URL.RawQuery != "" {
			fullPath += "?" + c.Request.URL.RawQuery
		}

		ctxLogger.Log(ctx, levelForStatus(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", fullPath),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusNotFound:
		return slog.LevelInfo
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// loggerFor prefers the request's context logger, which carries the
// request and correlation ids, over the fallback.
func loggerFor(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := logging.LoggerFromContext(c.Request.Context()); ok {
		return l
	}
	if fallback != nil {
		return fallback
	}

	return slog.Default()
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
