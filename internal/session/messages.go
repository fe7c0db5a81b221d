package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/dugout/internal/api"
	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/gateway"
	"github.com/preston-bernstein/dugout/internal/lineup"
)

const (
	msgLoggedOut     = "Logged out."
	msgLoginRequired = "Please log in."
)

// userMessage turns an action error into the text shown to the user.
func userMessage(err error) string {
	if vErr, ok := lineup.AsValidationError(err); ok {
		return vErr.Error()
	}
	if rej, ok := api.AsRejectionError(err); ok && rej.Message != "" {
		return rej.Message
	}
	if netErr, ok := gateway.AsNetworkError(err); ok {
		var msg string
		switch {
		case netErr.IsTransport():
			msg = "Could not reach the server."
		case netErr.Message != "":
			msg = fmt.Sprintf("Server error (%d): %s", netErr.StatusCode, netErr.Message)
		default:
			msg = fmt.Sprintf("Server error (%d).", netErr.StatusCode)
		}
		if api.IsRetryable(err) {
			msg = strings.TrimSuffix(msg, ".") + ". Try again."
		}
		return msg
	}
	if errors.Is(err, ErrNotAuthenticated) {
		return msgLoginRequired
	}
	return err.Error()
}

func resultSummary(r domain.GameResult) string {
	return fmt.Sprintf("%s vs %s - score %d-%d (%s)", r.HomeTeam, r.AwayTeam, r.HomeScore, r.AwayScore, r.Outcome)
}
