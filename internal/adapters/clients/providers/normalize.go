// Package providers contains one adapter per upstream content service.
// Each adapter wraps the instrumented client, speaks one provider's wire
// format, and normalizes the response into a domain value. All adapters
// share the failure contract defined in the ports package: a single attempt,
// and a domain provider-failure error for anything unusable.
package providers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/uplift-labs/cheer-gateway/internal/domain"
)

// maxResponseBytes caps how much of a provider response is read. The largest
// legitimate payload is the bulk quote list at well under 1MB.
const maxResponseBytes = 4 << 20

// decodeJSON checks the response status, decodes the body into v, and always
// closes the body. Numbers decode as json.Number so numeric fields survive
// coercion to string without float formatting artifacts.
func decodeJSON(resp *http.Response, provider string, v any) error {
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.NewUnavailableError(provider, fmt.Sprintf("status %d", resp.StatusCode))
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return domain.NewBadPayloadError(provider, fmt.Sprintf("decoding JSON: %v", err))
	}

	return nil
}

// asString coerces a loosely-typed JSON value to a string. Providers in this
// space are sloppy about types (numeric chapter fields, null authors), so
// adapters read through this instead of asserting concrete types.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case nil:
		return ""
	default:
		return ""
	}
}

// collapseSpace trims a string and collapses interior runs of whitespace,
// including newlines and tabs, to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
