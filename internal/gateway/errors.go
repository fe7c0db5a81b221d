package gateway

import (
	"errors"
	"fmt"
)

// ErrAuthLost is returned when a protected call comes back 401. The session
// has already been marked unauthenticated and recovery has run by the time a
// caller sees it.
var ErrAuthLost = errors.New("session no longer authenticated")

// NetworkError describes any other failed exchange: a transport failure
// (StatusCode == 0) or a non-success status from the server.
type NetworkError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s %s: transport failure: %v", e.Method, e.Path, e.Err)
		}
		return fmt.Sprintf("%s %s: transport failure", e.Method, e.Path)
	}
	msg := e.Message
	if msg == "" {
		msg = "unexpected status"
	}
	return fmt.Sprintf("%s %s: %s (status=%d)", e.Method, e.Path, msg, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the server was never reached.
func (e *NetworkError) IsTransport() bool {
	return e.StatusCode == 0
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// IsAuthLost reports whether err came from a rejected session.
func IsAuthLost(err error) bool {
	return errors.Is(err, ErrAuthLost)
}
