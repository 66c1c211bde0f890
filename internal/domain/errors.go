// Domain errors represent provider-level failures, NOT HTTP errors.
// They are infrastructure-agnostic; the HTTP adapter decides what, if
// anything, the caller sees. Under the gateway's availability policy every
// provider failure is masked by fallback content, so these errors mostly
// travel between an adapter and the fallback chain.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnavailable indicates a content provider could not be reached or
	// answered with a non-success status.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrBadPayload indicates a provider answered successfully but its
	// payload was malformed, empty, or failed a content invariant.
	ErrBadPayload = errors.New("bad provider payload")
)

// UnavailableError provides context for unreachable or failing providers.
type UnavailableError struct {
	Provider string
	Reason   string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("provider %q unavailable: %s", e.Provider, e.Reason)
	}

	return fmt.Sprintf("provider %q unavailable", e.Provider)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(provider, reason string) error {
	return &UnavailableError{Provider: provider, Reason: reason}
}

// BadPayloadError provides context for unusable provider responses.
// This covers malformed JSON, missing fields, empty text, and
// provider-reported soft errors delivered with a success status.
type BadPayloadError struct {
	Provider string
	Reason   string
}

// Error implements the error interface.
func (e *BadPayloadError) Error() string {
	return fmt.Sprintf("provider %q returned bad payload: %s", e.Provider, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *BadPayloadError) Unwrap() error {
	return ErrBadPayload
}

// NewBadPayloadError creates a bad payload error with context.
func NewBadPayloadError(provider, reason string) error {
	return &BadPayloadError{Provider: provider, Reason: reason}
}

// IsUnavailable checks if an error is a provider availability error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsBadPayload checks if an error is a bad payload error.
func IsBadPayload(err error) bool {
	return errors.Is(err, ErrBadPayload)
}

// IsProviderFailure reports whether the error is any provider-side failure
// that the fallback supplier should mask.
func IsProviderFailure(err error) bool {
	return IsUnavailable(err) || IsBadPayload(err)
}
