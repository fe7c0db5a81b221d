package domain

import (
	"reflect"
	"testing"
)

func sampleState() GameState {
	return GameState{
		Teams: []Team{
			{Name: "Bakers", Players: []Player{
				{ID: 1, Name: "Taro Yamada", IsPitcher: true},
				{ID: 2, Name: "Kenta Tanaka"},
				{ID: 3, Name: "Ichiro Suzuki"},
			}},
			{Name: "Owls", Players: []Player{{ID: 20, Name: "Away Guy"}}},
		},
		Schedule: []GameResult{
			{HomeTeam: "Bakers", AwayTeam: "Owls", HomeScore: 3, AwayScore: 1, Outcome: OutcomeWin},
			{HomeTeam: "Owls", AwayTeam: "Bakers", HomeScore: 2, AwayScore: 2, Outcome: OutcomeDraw},
		},
		CurrentOrder: &Lineup{Batters: [BattingSlots]PlayerID{2, 3, 4, 5, 6, 7, 8, 9, 11}, Pitcher: 1},
	}
}

func TestCloneSharesNoMemory(t *testing.T) {
	orig := sampleState()
	clone := orig.Clone()

	if !reflect.DeepEqual(orig, clone) {
		t.Fatalf("expected clone to equal original")
	}

	clone.Teams[0].Players[0].Name = "mutated"
	clone.Schedule[0].HomeScore = 99
	clone.CurrentOrder.Pitcher = 42

	if orig.Teams[0].Players[0].Name != "Taro Yamada" {
		t.Fatalf("expected roster to be unaffected, got %s", orig.Teams[0].Players[0].Name)
	}
	if orig.Schedule[0].HomeScore != 3 {
		t.Fatalf("expected schedule to be unaffected")
	}
	if orig.CurrentOrder.Pitcher != 1 {
		t.Fatalf("expected current order to be unaffected")
	}
}

func TestTeamLookupsPreserveRosterOrder(t *testing.T) {
	state := sampleState()
	if got := state.TeamNames(); !reflect.DeepEqual(got, []string{"Bakers", "Owls"}) {
		t.Fatalf("unexpected team order %v", got)
	}

	team, ok := state.Team("Bakers")
	if !ok {
		t.Fatalf("expected Bakers roster")
	}
	batters := team.Batters()
	if len(batters) != 2 || batters[0].ID != 2 || batters[1].ID != 3 {
		t.Fatalf("unexpected batters %+v", batters)
	}
	if pitchers := team.Pitchers(); len(pitchers) != 1 || pitchers[0].ID != 1 {
		t.Fatalf("unexpected pitchers %+v", pitchers)
	}
	if _, ok := team.Player(99); ok {
		t.Fatalf("expected unknown player lookup to fail")
	}
	if _, ok := state.Team("Nobody"); ok {
		t.Fatalf("expected unknown team lookup to fail")
	}
}

func TestScheduleNewestFirstDoesNotReorderStorage(t *testing.T) {
	state := sampleState()
	reversed := state.ScheduleNewestFirst()

	if reversed[0].Outcome != OutcomeDraw || reversed[1].Outcome != OutcomeWin {
		t.Fatalf("expected newest first, got %+v", reversed)
	}
	if state.Schedule[0].Outcome != OutcomeWin {
		t.Fatalf("expected stored schedule to keep chronological order")
	}
	latest, ok := state.LatestResult()
	if !ok || latest.Outcome != OutcomeDraw {
		t.Fatalf("expected latest result to be the draw, got %+v", latest)
	}
	if _, ok := (GameState{}).LatestResult(); ok {
		t.Fatalf("expected no latest result on empty schedule")
	}
}

func TestLineupContains(t *testing.T) {
	l := Lineup{Batters: [BattingSlots]PlayerID{1, 2, 3, 4, 5, 6, 7, 8, 9}, Pitcher: 10}
	if !l.Contains(10) || !l.Contains(5) {
		t.Fatalf("expected lineup to contain batter and pitcher")
	}
	if l.Contains(11) {
		t.Fatalf("expected lineup not to contain 11")
	}
}
