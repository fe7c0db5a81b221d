package view

import "github.com/preston-bernstein/dugout/internal/domain"

// OrderPage is the data behind the order form: candidates of the user's team
// in roster order and the last confirmed lineup, if any.
type OrderPage struct {
	Team     string
	Batters  []domain.Player
	Pitchers []domain.Player
	Current  *domain.Lineup
}

// BuildOrderPage selects the named team from state. An empty name picks the
// first team. ok is false when the team is not present.
func BuildOrderPage(state domain.GameState, team string) (OrderPage, bool) {
	var t domain.Team
	var found bool
	if team == "" && len(state.Teams) > 0 {
		t, found = state.Teams[0], true
	} else {
		t, found = state.Team(team)
	}
	if !found {
		return OrderPage{Team: team}, false
	}

	page := OrderPage{
		Team:     t.Name,
		Batters:  t.Batters(),
		Pitchers: t.Pitchers(),
	}
	if state.CurrentOrder != nil {
		order := *state.CurrentOrder
		page.Current = &order
	}
	return page, true
}

// PlayerName resolves an id against the page's candidates.
func (p OrderPage) PlayerName(id domain.PlayerID) string {
	for _, group := range [][]domain.Player{p.Batters, p.Pitchers} {
		for _, pl := range group {
			if pl.ID == id {
				return pl.Name
			}
		}
	}
	return ""
}
