package middleware

import (
	"time"

	"go-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextRequestID is the gin context key holding the request id.
const ContextRequestID = "requestID"

// RequestLog tags every request with a uuid and writes one access log line
// when the handler chain finishes.
func RequestLog() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(ContextRequestID, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Info("request completed",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
