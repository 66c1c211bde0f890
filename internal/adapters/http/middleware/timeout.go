package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// SimpleTimeout returns middleware that puts a deadline on the request
// context without attempting to abort the handler. Content handlers always
// produce a fallback response, so a hard abort path is unnecessary; the
// deadline exists to cap how long provider attempts can stack up within one
// request. Provider clients respect the context and fail fast once it
// expires, which sends the remaining chain straight to fallback.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
