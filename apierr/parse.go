package apierr

import (
	"encoding/json"
	"net/http"
	"strings"
)

// wireError is the vendor's error body. It never escapes this package;
// Parse flattens it into an APIError.
type wireError struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// Unknown is the error for transport faults that produced no response
// at all (connection refused, timeout before headers, etc.).
func Unknown() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "Unknown error occurred",
	}
}

// Parse normalizes a vendor error body into an APIError.
// slurp is already size-limited; status is the HTTP status.
func Parse(slurp []byte, status int) *APIError {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	trimmed := strings.TrimSpace(string(slurp))

	// Non-JSON fallback.
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &APIError{
			Status:  status,
			Message: coalesce(trimmed, http.StatusText(status)),
			Raw:     trimmed,
		}
	}

	var payload wireError
	if err := json.Unmarshal(slurp, &payload); err != nil {
		return &APIError{
			Status:  status,
			Message: coalesce(trimmed, http.StatusText(status)),
			Raw:     trimmed,
		}
	}

	if payload.Code != nil && *payload.Code > 0 {
		status = *payload.Code
	}

	// The field map is best-effort: a malformed "errors" value never
	// masks the message and status we already have.
	var fieldErrs map[string][]string
	if len(payload.Errors) > 0 {
		if err := json.Unmarshal(payload.Errors, &fieldErrs); err != nil {
			fieldErrs = nil
		}
	}

	return &APIError{
		Status:  status,
		Message: coalesce(payload.Message, trimmed, http.StatusText(status)),
		Errors:  fieldErrs,
		Raw:     trimmed,
	}
}

func coalesce(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
