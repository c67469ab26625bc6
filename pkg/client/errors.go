package client

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx response. Message is the API's "error" field when
// it sent one, otherwise the trimmed body.
type HTTPError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.Path, e.StatusCode, msg)
}

// IsStatus reports whether err wraps an HTTPError with the given code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}

// IsNotFound reports whether the API answered 404. Lookups of unknown users
// and skills end this way and are not failures of the API.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
