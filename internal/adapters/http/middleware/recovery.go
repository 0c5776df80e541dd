package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/project-blog/internal/adapters/http/dto"
)

// Recovery turns a panic into a 500. The panic and its stack are logged at
// ERROR with the request's ids.
//
// respond writes the response body, so HTML routes can serve an error page;
// nil means the JSON error envelope. Nothing is written if the handler had
// already started the response.
func Recovery(logger *slog.Logger, respond func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}

			loggerFor(c, logger).ErrorContext(c.Request.Context(), "panic recovered",
				slog.String("error", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			if respond != nil {
				c.Status(http.StatusInternalServerError)
				respond(c)
				c.Abort()

				return
			}

			dto.HandleErrorCode(c, dto.ErrorCodeInternal, "an internal error occurred")
			c.Abort()
		}()

		c.Next()
	}
}
