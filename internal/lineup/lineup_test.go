package lineup

import (
	"testing"

	"github.com/preston-bernstein/dugout/internal/domain"
)

func expectKind(t *testing.T, err error, kind Kind) *ValidationError {
	t.Helper()
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError %s, got %v", kind, err)
	}
	if vErr.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, vErr.Kind, vErr)
	}
	return vErr
}

func TestValidateAcceptsDistinctLineup(t *testing.T) {
	got, err := Validate(Picks(1, 2, 3, 4, 5, 6, 7, 8, 9), Pick(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.Lineup{Batters: [9]domain.PlayerID{1, 2, 3, 4, 5, 6, 7, 8, 9}, Pitcher: 10}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestValidateReportsLowestEmptySlot(t *testing.T) {
	batters := Picks(1, 2, 3, 4, 5, 6, 7, 8, 9)
	batters[3] = Empty
	batters[6] = Empty

	vErr := expectKind(t, firstErr(Validate(batters, Pick(10))), MissingBatter)
	if vErr.Slot != 4 {
		t.Fatalf("expected slot 4, got %d", vErr.Slot)
	}
}

func TestValidateFlagsDuplicateAtSecondOccurrence(t *testing.T) {
	vErr := expectKind(t, firstErr(Validate(Picks(1, 2, 3, 2, 5, 6, 7, 8, 9), Pick(10))), DuplicateBatter)
	if vErr.PlayerID != 2 || vErr.Slot != 4 {
		t.Fatalf("expected player 2 at slot 4, got %+v", vErr)
	}
}

func TestValidateReportsFirstViolationInScanOrder(t *testing.T) {
	batters := Picks(1, 1, 3, 4, 5, 6, 7, 8, 9)
	batters[5] = Empty

	expectKind(t, firstErr(Validate(batters, Empty)), DuplicateBatter)
}

func TestValidateMissingPitcher(t *testing.T) {
	expectKind(t, firstErr(Validate(Picks(1, 2, 3, 4, 5, 6, 7, 8, 9), Empty)), MissingPitcher)
}

func TestValidatePitcherInBattingOrder(t *testing.T) {
	vErr := expectKind(t, firstErr(Validate(Picks(1, 2, 3, 4, 5, 6, 7, 8, 9), Pick(5))), PitcherDuplicatesBatter)
	if vErr.PlayerID != 5 {
		t.Fatalf("expected player 5, got %d", vErr.PlayerID)
	}
}

func TestValidateWrongSlotCount(t *testing.T) {
	vErr := expectKind(t, firstErr(Validate(Picks(1, 2, 3), Pick(10))), WrongSlotCount)
	if vErr.Count != 3 {
		t.Fatalf("expected count 3, got %d", vErr.Count)
	}
}

func TestParseSelectionsThenValidate(t *testing.T) {
	sels, p, err := ParseSelections([]string{"1", "2", " 3 ", "4", "5", "6", "7", "8", "9"}, "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Validate(sels, p)
	if err != nil || got.Batters[2] != 3 || got.Pitcher != 10 {
		t.Fatalf("unexpected lineup %+v err=%v", got, err)
	}

	sels, p, _ = ParseSelections([]string{"1", "", "3", "4", "5", "6", "7", "8", "9"}, "10")
	vErr := expectKind(t, firstErr(Validate(sels, p)), MissingBatter)
	if vErr.Slot != 2 {
		t.Fatalf("expected slot 2, got %d", vErr.Slot)
	}
}

func TestParseSelectionsRejectsNonNumeric(t *testing.T) {
	_, _, err := ParseSelections([]string{"1", "abc"}, "")
	vErr := expectKind(t, err, InvalidSelection)
	if vErr.Slot != 2 || vErr.Value != "abc" {
		t.Fatalf("unexpected error %+v", vErr)
	}

	_, _, err = ParseSelections([]string{"1"}, "-4")
	vErr = expectKind(t, err, InvalidSelection)
	if vErr.Slot != PitcherSlot {
		t.Fatalf("expected pitcher slot, got %d", vErr.Slot)
	}
}

func TestFromLineupRoundTripsThroughValidate(t *testing.T) {
	l := domain.Lineup{Batters: [9]domain.PlayerID{2, 3, 4, 5, 6, 7, 8, 9, 11}, Pitcher: 1}
	batters, pitcher := FromLineup(l)
	got, err := Validate(batters, pitcher)
	if err != nil || got != l {
		t.Fatalf("expected %+v, got %+v err=%v", l, got, err)
	}
}

func TestFromLineupTreatsZeroAsEmpty(t *testing.T) {
	batters, pitcher := FromLineup(domain.Lineup{Batters: [9]domain.PlayerID{2, 0, 4, 5, 6, 7, 8, 9, 11}})
	if batters[1] != Empty || pitcher != Empty || batters[0] != Pick(2) {
		t.Fatalf("unexpected selections %+v / %+v", batters, pitcher)
	}
	vErr := expectKind(t, firstErr(Validate(batters, pitcher)), MissingBatter)
	if vErr.Slot != 2 {
		t.Fatalf("expected slot 2, got %d", vErr.Slot)
	}
}

func TestValidationErrorMessages(t *testing.T) {
	cases := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Kind: MissingBatter, Slot: 3}, "select a player for slot 3"},
		{&ValidationError{Kind: DuplicateBatter, PlayerID: 7}, "player 7 appears more than once in the batting order"},
		{&ValidationError{Kind: MissingPitcher}, "select a starting pitcher"},
		{&ValidationError{Kind: PitcherDuplicatesBatter, PlayerID: 5}, "starting pitcher 5 is already in the batting order"},
		{&ValidationError{Kind: WrongSlotCount, Count: 8}, "lineup needs 9 batting slots, got 8"},
		{&ValidationError{Kind: InvalidSelection, Slot: 1, Value: "x"}, `slot 1 selection "x" is not a player id`},
		{&ValidationError{Kind: InvalidSelection, Slot: PitcherSlot, Value: "x"}, `pitcher selection "x" is not a player id`},
		{&ValidationError{Kind: "other"}, "invalid lineup"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func firstErr(_ domain.Lineup, err error) error {
	return err
}
