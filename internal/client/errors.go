package client

import (
	"errors"
	"fmt"
)

// Error is the single failure type returned by every network-backed client
// method. Kind is one of domain.ErrAuth, domain.ErrBooking or domain.ErrAdmin
// and is matched by errors.Is, as is the optional cause in Err.
type Error struct {
	Kind       error
	Op         string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

// Error returns the human-readable message: the server-supplied one when
// present, otherwise the operation's default.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// String includes the operation and status for logs.
func (e *Error) String() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Message)
}

// StatusCode extracts the HTTP status from a client error, or 0.
func StatusCode(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}
