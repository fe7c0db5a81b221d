package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/preston-bernstein/dugout/internal/domain"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type playerJSON struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	IsPitcher bool   `json:"is_pitcher"`
}

// teamsJSON encodes rosters as one object keyed by team name. Keys are
// written in roster order, which a map would lose.
type teamsJSON []domain.Team

func (t teamsJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, team := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(team.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		players := make([]playerJSON, 0, len(team.Players))
		for _, p := range team.Players {
			players = append(players, playerJSON{ID: int(p.ID), Name: p.Name, Position: p.Position, IsPitcher: p.IsPitcher})
		}
		value, err := json.Marshal(players)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type resultJSON struct {
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Result    string `json:"result"`
}

type orderJSON struct {
	Batters []int `json:"batters"`
	Pitcher int   `json:"pitcher"`
}

type gameStateJSON struct {
	Teams        teamsJSON    `json:"teams"`
	Schedule     []resultJSON `json:"schedule"`
	CurrentOrder *orderJSON   `json:"current_order"`
}

func toResultJSON(r domain.GameResult) resultJSON {
	return resultJSON{
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Result:    outcomeLabel(r.Outcome),
	}
}

func outcomeLabel(o domain.Outcome) string {
	switch o {
	case domain.OutcomeWin:
		return "win"
	case domain.OutcomeLoss:
		return "loss"
	default:
		return "draw"
	}
}

func toGameStateJSON(s domain.GameState) gameStateJSON {
	out := gameStateJSON{
		Teams:    teamsJSON(s.Teams),
		Schedule: make([]resultJSON, 0, len(s.Schedule)),
	}
	for _, r := range s.Schedule {
		out.Schedule = append(out.Schedule, toResultJSON(r))
	}
	if s.CurrentOrder != nil {
		order := orderJSON{Batters: make([]int, 0, domain.BattingSlots), Pitcher: int(s.CurrentOrder.Pitcher)}
		for _, id := range s.CurrentOrder.Batters {
			order.Batters = append(order.Batters, int(id))
		}
		out.CurrentOrder = &order
	}
	return out
}
