package api

import (
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
    "go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
    return func(c *gin.Context) {
        id := c.GetHeader(requestIDHeader)
        if id == "" { id = uuid.NewString() }
        c.Set("request_id", id)
        c.Header(requestIDHeader, id)
        c.Next()
    }
}

// AccessLog logs one line per request. Bodies are never logged.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        start := time.Now()
        c.Next()
        fields := []zap.Field{
            zap.String("request_id", c.GetString("request_id")),
            zap.String("method", c.Request.Method),
            zap.String("path", c.Request.URL.Path),
            zap.Int("status", c.Writer.Status()),
            zap.Duration("latency", time.Since(start)),
        }
        if len(c.Errors) > 0 {
            fields = append(fields, zap.String("errors", c.Errors.String()))
        }
        switch {
        case c.Writer.Status() >= 500:
            log.Error("request", fields...)
        case c.Writer.Status() >= 400:
            log.Warn("request", fields...)
        default:
            log.Info("request", fields...)
        }
    }
}
