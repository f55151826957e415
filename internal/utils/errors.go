package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that maps to an HTTP status.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func New(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// NotFound is a 404 HTTPError.
func NotFound(message string) error { return New(http.StatusNotFound, message) }

// BadRequest is a 400 HTTPError.
func BadRequest(message string) error { return New(http.StatusBadRequest, message) }

// StatusCode returns the status carried by err, or 500.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// WriteError writes err as a plain-text response. Errors without a status
// are reported as a generic 500 so internals do not leak.
func WriteError(w http.ResponseWriter, err error) {
	var he *HTTPError
	if errors.As(err, &he) {
		http.Error(w, he.Message, he.Code)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
