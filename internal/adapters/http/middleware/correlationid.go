package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/uplift-labs/cheer-gateway/internal/platform/logging"
)

const (
	// HeaderCorrelationID carries the cross-service transaction identifier.
	// Where the request ID names one hop, the correlation ID follows the
	// whole chain: caller, gateway, and every provider fetched on its behalf.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin.Context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates correlation IDs.
// An X-Correlation-ID supplied by the caller is kept as-is; when absent
// the gateway is the transaction origin and mints a UUID v4. The ID is
// stored in the gin.Context, echoed on the response, and attached to the
// context logger so provider calls made while serving the request can be
// tied back to the originating transaction.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderCorrelationID,
		contextKey:      ContextKeyCorrelationID,
		contextStore:    ContextWithCorrelationID,
		contextEnricher: logging.WithCorrelationID,
	})
}

// GetCorrelationID returns the correlation ID stored in the gin.Context,
// or an empty string when the middleware has not run.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID is GetCorrelationID with "unknown" substituted for
// the empty string, for log fields that should never be blank.
func MustGetCorrelationID(c *gin.Context) string {
	if id := GetCorrelationID(c); id != "" {
		return id
	}

	return "unknown"
}
