// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/uplift-labs/cheer-gateway/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request identifier.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin.Context key holding the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that assigns each request an identifier.
// An incoming X-Request-ID header is honored; otherwise a fresh UUID v4
// is generated. The ID is stored in the gin.Context, echoed on the
// response, and attached to the context logger so that gateway log lines
// and outbound provider calls can be matched to a single request.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderRequestID,
		contextKey:      ContextKeyRequestID,
		contextStore:    ContextWithRequestID,
		contextEnricher: logging.WithRequestID,
	})
}

// GetRequestID returns the request ID stored in the gin.Context, or an
// empty string when the middleware has not run.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// MustGetRequestID is GetRequestID with "unknown" substituted for the
// empty string, for log fields that should never be blank.
func MustGetRequestID(c *gin.Context) string {
	if id := GetRequestID(c); id != "" {
		return id
	}

	return "unknown"
}
