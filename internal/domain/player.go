package domain

// PlayerID is the stable identity of a player. Names are display-only.
type PlayerID int

// Player is a roster entry.
type Player struct {
	ID        PlayerID `json:"id"`
	Name      string   `json:"name"`
	Position  string   `json:"position,omitempty"`
	IsPitcher bool     `json:"isPitcher"`
}

// Team is a named roster in roster order.
type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Batters returns the non-pitchers in roster order.
func (t Team) Batters() []Player {
	return t.filter(false)
}

// Pitchers returns the pitchers in roster order.
func (t Team) Pitchers() []Player {
	return t.filter(true)
}

// Player looks up a roster entry by id.
func (t Team) Player(id PlayerID) (Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

func (t Team) filter(pitchers bool) []Player {
	out := make([]Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p.IsPitcher == pitchers {
			out = append(out, p)
		}
	}
	return out
}
