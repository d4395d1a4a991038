package middleware

import (
	"log/slog"
	"net/http"

	"lift-reservation/internal/handler/httperr"
	"lift-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)
		if c.Writer.Written() {
			return
		}
		// latest public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.Response{Status: http.StatusInternalServerError, Detail: httperr.Detail{Code: httperr.CodeInternal}}
		resp.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}

const maxStackLines = 12

// 4xx are client outcomes; only 5xx carry a stack into the log.
func logServerErrors(c *gin.Context) {
	for _, ge := range c.Errors {
		resp, ok := ge.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.ErrorContext(c.Request.Context(), "request failed",
			"status", resp.Status,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"error", ge.Err.Error(),
			"stack", errs.ExtractStackLines(ge.Err, maxStackLines))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				httperr.Abort(c, http.StatusInternalServerError, "Internal server error", httperr.CodeInternal)
			}
		}()
		c.Next()
	}
}
