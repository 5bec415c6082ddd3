package errors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Responder logs handler errors and writes the route's fixed failure body.
type Responder struct {
	logger *slog.Logger
}

// NewResponder creates a responder logging through logger; nil falls back to slog.Default.
func NewResponder(logger *slog.Logger) *Responder {
	return &Responder{logger: logger}
}

// Fail logs cause with request context and aborts the request with failure.
func (r *Responder) Fail(c *gin.Context, failure Failure, cause error) {
	attrs := []slog.Attr{
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", failure.Status),
	}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
		_ = c.Error(cause)
	}
	r.log().LogAttrs(c.Request.Context(), slog.LevelError, failure.Message, attrs...)
	c.AbortWithStatusJSON(failure.Status, failure.Body())
}

func (r *Responder) log() *slog.Logger {
	if r == nil || r.logger == nil {
		return slog.Default()
	}
	return r.logger
}
