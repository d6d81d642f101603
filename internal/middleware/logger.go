package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key the request id is stored under.
// Handlers read it back when logging internal errors.
const RequestIDKey = "request_id"

// RequestID tags every request with an id for log correlation. An id supplied
// by the caller is kept, so the id stays stable across proxies and the
// frontend can quote it in bug reports.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one access-log line per request once the handler chain has
// finished, prefixed with the request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		id, _ := c.Get(RequestIDKey)
		log.Printf("[%s] %s %s -> %d (%s)",
			id,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

// Recovery turns panics anywhere down the chain into plain 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
