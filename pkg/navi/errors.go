package navi

import (
	"errors"
	"fmt"
	"io"
)

var ErrNotFound = errors.New("no matching upstream record")

// APIError is a non 2xx response from one of the upstream endpoints
type APIError struct {
	StatusCode int
	Body       string
}

func newAPIError(statusCode int, body io.Reader) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       readSnippet(body),
	}
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
