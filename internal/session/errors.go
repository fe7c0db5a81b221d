package session

import "errors"

var (
	// ErrBusy is returned when an action is attempted while another is in flight.
	ErrBusy = errors.New("another action is in progress")
	// ErrNotAuthenticated is returned for game actions without a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
