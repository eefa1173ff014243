package client

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx response. Message is the server's {"error"} text,
// or the status text when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsConflict reports a rejected optimistic update.
func IsConflict(err error) bool {
	return StatusOf(err) == http.StatusConflict
}
