package router

import (
	"time"

	"leadership-assessment-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger replaces gin's default access log with a zap line per request
// and tags the request with an id.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		id := utils.RequestID(c.GetHeader(utils.RequestIDHeader))
		c.Set(utils.RequestIDKey, id)
		c.Header(utils.RequestIDHeader, id)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		// Handlers log failures themselves; the access line stays below Error.
		if c.Writer.Status() >= 400 {
			logger.Warn("request", fields...)
		} else {
			logger.Info("request", fields...)
		}
	}
}
