package afterschoolserver

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs the timestamp, method and path of every incoming request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "request",
			slog.String("time", time.Now().UTC().Format(time.RFC3339Nano)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
		)
		c.Next()
	}
}

// CORS allows every origin.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	return cors.New(config)
}
