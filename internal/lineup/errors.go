package lineup

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/dugout/internal/domain"
)

// Kind names the rule a proposed lineup broke.
type Kind string

const (
	WrongSlotCount          Kind = "wrong_slot_count"
	InvalidSelection        Kind = "invalid_selection"
	MissingBatter           Kind = "missing_batter"
	DuplicateBatter         Kind = "duplicate_batter"
	MissingPitcher          Kind = "missing_pitcher"
	PitcherDuplicatesBatter Kind = "pitcher_duplicates_batter"
)

// PitcherSlot marks a ValidationError that refers to the pitcher selection.
const PitcherSlot = 0

// ValidationError reports the first lineup rule that was broken.
type ValidationError struct {
	Kind     Kind
	Slot     int
	PlayerID domain.PlayerID
	Value    string
	Count    int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case WrongSlotCount:
		return fmt.Sprintf("lineup needs %d batting slots, got %d", domain.BattingSlots, e.Count)
	case InvalidSelection:
		if e.Slot == PitcherSlot {
			return fmt.Sprintf("pitcher selection %q is not a player id", e.Value)
		}
		return fmt.Sprintf("slot %d selection %q is not a player id", e.Slot, e.Value)
	case MissingBatter:
		return fmt.Sprintf("select a player for slot %d", e.Slot)
	case DuplicateBatter:
		return fmt.Sprintf("player %d appears more than once in the batting order", e.PlayerID)
	case MissingPitcher:
		return "select a starting pitcher"
	case PitcherDuplicatesBatter:
		return fmt.Sprintf("starting pitcher %d is already in the batting order", e.PlayerID)
	default:
		return "invalid lineup"
	}
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
