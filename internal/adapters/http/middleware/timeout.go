package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/adapters/http/dto"
)

// Timeout puts a deadline of d on the request context. Handlers run on
// the request goroutine and are expected to honour ctx.Done().
//
// If the deadline passed and the handler wrote nothing, the client gets a
// 504 with the TIMEOUT envelope.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		loggerFor(c, nil).WarnContext(ctx, "request timeout",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("timeout", d),
		)

		dto.HandleErrorCode(c, dto.ErrorCodeTimeout, "request timeout exceeded")
	}
}
