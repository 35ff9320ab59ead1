package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// auditBodyLimit caps how much of a request body goes into audit records.
const auditBodyLimit = 4 << 10

// Audit records write operations (method, path, outcome, caller and a bounded
// body excerpt) after the handler runs. Read traffic is skipped.
func Audit(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		var excerpt []byte
		if c.Request.Body != nil {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, auditBodyLimit+1))
			if err == nil {
				if len(raw) > auditBodyLimit {
					excerpt = raw[:auditBodyLimit]
				} else {
					excerpt = raw
				}
				// handlers still need the body; splice the read bytes back
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), c.Request.Body))
			}
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(excerpt) > 0 {
			fields = append(fields, zap.ByteString("body", excerpt))
		}

		if status >= 400 {
			log.Warn("audit", fields...)
		} else {
			log.Info("audit", fields...)
		}
	}
}
