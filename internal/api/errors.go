package api

import (
	"errors"
	"fmt"
)

// RejectionError is a well-formed refusal from the server, such as bad
// credentials or an order the server will not accept.
type RejectionError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *RejectionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request rejected"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Operation, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Operation, msg)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// AsRejectionError attempts to unwrap an error into a RejectionError.
func AsRejectionError(err error) (*RejectionError, bool) {
	var rejErr *RejectionError
	if errors.As(err, &rejErr) {
		return rejErr, true
	}
	return nil, false
}
