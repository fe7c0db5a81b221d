package domain

// GameState is the client-side cache of server-confirmed data.
type GameState struct {
	Teams        []Team       `json:"teams"`
	Schedule     []GameResult `json:"schedule"`
	CurrentOrder *Lineup      `json:"currentOrder,omitempty"`
}

// Team returns the roster for the named team.
func (s GameState) Team(name string) (Team, bool) {
	for _, t := range s.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return Team{}, false
}

// TeamNames lists team names in server order.
func (s GameState) TeamNames() []string {
	names := make([]string, 0, len(s.Teams))
	for _, t := range s.Teams {
		names = append(names, t.Name)
	}
	return names
}

// LatestResult returns the chronologically last result.
func (s GameState) LatestResult() (GameResult, bool) {
	if len(s.Schedule) == 0 {
		return GameResult{}, false
	}
	return s.Schedule[len(s.Schedule)-1], true
}

// ScheduleNewestFirst returns a reversed copy for display; storage order is untouched.
func (s GameState) ScheduleNewestFirst() []GameResult {
	out := make([]GameResult, len(s.Schedule))
	for i, r := range s.Schedule {
		out[len(s.Schedule)-1-i] = r
	}
	return out
}

// Clone returns a deep copy that shares no mutable memory with s.
func (s GameState) Clone() GameState {
	out := GameState{}
	if s.Teams != nil {
		out.Teams = make([]Team, len(s.Teams))
		for i, t := range s.Teams {
			out.Teams[i] = Team{Name: t.Name}
			if t.Players != nil {
				out.Teams[i].Players = make([]Player, len(t.Players))
				copy(out.Teams[i].Players, t.Players)
			}
		}
	}
	if s.Schedule != nil {
		out.Schedule = make([]GameResult, len(s.Schedule))
		copy(out.Schedule, s.Schedule)
	}
	if s.CurrentOrder != nil {
		order := *s.CurrentOrder
		out.CurrentOrder = &order
	}
	return out
}
