package league

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/dugout/internal/domain"
)

// OrderError is a lineup the league refuses. It is always the caller's fault.
type OrderError struct {
	PlayerID domain.PlayerID
	Reason   string
}

func (e *OrderError) Error() string {
	if e.PlayerID != 0 {
		return fmt.Sprintf("player %d %s", e.PlayerID, e.Reason)
	}
	return e.Reason
}

// AsOrderError attempts to unwrap an error into an OrderError.
func AsOrderError(err error) (*OrderError, bool) {
	var oErr *OrderError
	if errors.As(err, &oErr) {
		return oErr, true
	}
	return nil, false
}
