package apierr

import (
	"net/http"
)

type APIError struct {
	Status  int                 // HTTP status, or the service-specific code when the body carries one
	Message string              // human-ish summary
	Errors  map[string][]string // field name -> validation messages, when the server sends them
	Raw     string              // raw (trimmed) body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}
