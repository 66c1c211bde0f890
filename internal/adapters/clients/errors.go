// Package clients provides the instrumented HTTP client that provider
// adapters use to reach upstream content services.
package clients

import "errors"

// ErrCircuitOpen is returned when the circuit breaker is open.
// The provider is known to be unhealthy and calls are blocked until the
// breaker's probe window; the fallback supplier covers the gap.
var ErrCircuitOpen = errors.New("circuit breaker open")
