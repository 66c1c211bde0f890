// Package dto provides the wire-level response shapes for the gateway.
//
// Error responses are a flat {"error": "<msg>"} with a small fixed set of
// messages, and content responses are the domain types serialized directly.
// Existing clients string-match the error messages, so they are part of the
// public contract and must not change.
package dto

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Canonical error messages.
const (
	// MsgNotFound is returned for unknown paths.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned for any method other than GET or OPTIONS.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgUpstreamError is the generic body for any unhandled failure.
	// It never names which upstream broke.
	MsgUpstreamError = "Upstream error"
)

// NewErrorResponse wraps a canonical message in the envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// HealthResponse is the body for the root and /health endpoints.
type HealthResponse struct {
	OK bool `json:"ok"`
}
