package common

import (
	"errors"
	"fmt"
)

// Upstream failure classes shared by the weather providers and the LLM clients.
var (
	ErrTransport       = errors.New("upstream transport failure")
	ErrStatus          = errors.New("upstream returned non-success status")
	ErrUnexpectedShape = errors.New("upstream response has unexpected shape")
)

// StatusError carries the HTTP status and body of a non-success response.
// It matches ErrStatus under errors.Is.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %d", ErrStatus, e.Code)
	}
	return fmt.Sprintf("%s: %d: %s", ErrStatus, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Transport wraps err as an ErrTransport.
func Transport(err error) error {
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

// Shape returns an ErrUnexpectedShape describing what was missing.
func Shape(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedShape, fmt.Sprintf(format, args...))
}

// Class names the failure class of err for logging.
func Class(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrUnexpectedShape):
		return "shape"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
