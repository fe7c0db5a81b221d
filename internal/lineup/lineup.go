// Package lineup checks a proposed batting order and starting pitcher before
// anything is sent to the server. Roster membership and pitcher eligibility
// are left to the server.
package lineup

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/dugout/internal/domain"
)

// Selection is one slot of selection state: a player id or nothing.
type Selection struct {
	ID  domain.PlayerID
	Set bool
}

// Pick selects id.
func Pick(id domain.PlayerID) Selection {
	return Selection{ID: id, Set: true}
}

// Empty is an unfilled slot.
var Empty = Selection{}

// Picks builds filled selections from ids, in slot order.
func Picks(ids ...domain.PlayerID) []Selection {
	out := make([]Selection, 0, len(ids))
	for _, id := range ids {
		out = append(out, Pick(id))
	}
	return out
}

// Validate checks slots top-down and returns the first violation, or the
// normalized lineup.
func Validate(batters []Selection, pitcher Selection) (domain.Lineup, error) {
	if len(batters) != domain.BattingSlots {
		return domain.Lineup{}, &ValidationError{Kind: WrongSlotCount, Count: len(batters)}
	}

	var lineup domain.Lineup
	seen := make(map[domain.PlayerID]struct{}, domain.BattingSlots)
	for i, sel := range batters {
		slot := i + 1
		if !sel.Set {
			return domain.Lineup{}, &ValidationError{Kind: MissingBatter, Slot: slot}
		}
		if _, dup := seen[sel.ID]; dup {
			return domain.Lineup{}, &ValidationError{Kind: DuplicateBatter, Slot: slot, PlayerID: sel.ID}
		}
		seen[sel.ID] = struct{}{}
		lineup.Batters[i] = sel.ID
	}

	if !pitcher.Set {
		return domain.Lineup{}, &ValidationError{Kind: MissingPitcher, Slot: PitcherSlot}
	}
	if _, dup := seen[pitcher.ID]; dup {
		return domain.Lineup{}, &ValidationError{Kind: PitcherDuplicatesBatter, Slot: PitcherSlot, PlayerID: pitcher.ID}
	}
	lineup.Pitcher = pitcher.ID
	return lineup, nil
}

// ParseSelections converts raw slot values into selections. An empty or
// blank value is an unfilled slot; anything else must be a positive id.
func ParseSelections(batters []string, pitcher string) ([]Selection, Selection, error) {
	out := make([]Selection, 0, len(batters))
	for i, raw := range batters {
		sel, err := parseSelection(raw, i+1)
		if err != nil {
			return nil, Empty, err
		}
		out = append(out, sel)
	}
	p, err := parseSelection(pitcher, PitcherSlot)
	if err != nil {
		return nil, Empty, err
	}
	return out, p, nil
}

func parseSelection(raw string, slot int) (Selection, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Empty, nil
	}
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return Empty, &ValidationError{Kind: InvalidSelection, Slot: slot, Value: raw}
	}
	return Pick(domain.PlayerID(id)), nil
}

// FromLineup turns a lineup back into selection state, for prefilling the
// order form. A zero id is an unfilled slot.
func FromLineup(l domain.Lineup) ([]Selection, Selection) {
	out := make([]Selection, 0, domain.BattingSlots)
	for _, id := range l.Batters {
		out = append(out, fromID(id))
	}
	return out, fromID(l.Pitcher)
}

func fromID(id domain.PlayerID) Selection {
	if id == 0 {
		return Empty
	}
	return Pick(id)
}
