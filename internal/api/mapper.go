package api

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/dugout/internal/domain"
)

func mapGameState(resp gameStateResponse) (domain.GameState, error) {
	state := domain.GameState{
		Teams:    mapTeams(resp.Teams),
		Schedule: make([]domain.GameResult, 0, len(resp.Schedule)),
	}
	for i, r := range resp.Schedule {
		result, err := mapResult(r)
		if err != nil {
			return domain.GameState{}, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		state.Schedule = append(state.Schedule, result)
	}
	if resp.CurrentOrder != nil {
		order, err := mapOrder(*resp.CurrentOrder)
		if err != nil {
			return domain.GameState{}, fmt.Errorf("current_order: %w", err)
		}
		state.CurrentOrder = &order
	}
	return state, nil
}

func mapTeams(teams teamsPayload) []domain.Team {
	out := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, mapTeam(t))
	}
	return out
}

func mapTeam(t teamPayload) domain.Team {
	players := make([]domain.Player, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, domain.Player{
			ID:        domain.PlayerID(p.ID),
			Name:      p.Name,
			Position:  strings.TrimSpace(p.Position),
			IsPitcher: p.IsPitcher,
		})
	}
	return domain.Team{Name: t.Name, Players: players}
}

func mapResult(r resultPayload) (domain.GameResult, error) {
	outcome, err := mapOutcome(r.Result)
	if err != nil {
		return domain.GameResult{}, err
	}
	return domain.GameResult{
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		HomeScore: r.HomeScore,
		AwayScore: r.AwayScore,
		Outcome:   outcome,
	}, nil
}

func mapOrder(o orderPayload) (domain.Lineup, error) {
	if len(o.Batters) != domain.BattingSlots {
		return domain.Lineup{}, fmt.Errorf("expected %d batters, got %d", domain.BattingSlots, len(o.Batters))
	}
	var lineup domain.Lineup
	for i, id := range o.Batters {
		lineup.Batters[i] = domain.PlayerID(id)
	}
	lineup.Pitcher = domain.PlayerID(o.Pitcher)
	return lineup, nil
}

func lineupPayload(l domain.Lineup) orderPayload {
	batters := make([]int, 0, domain.BattingSlots)
	for _, id := range l.Batters {
		batters = append(batters, int(id))
	}
	return orderPayload{Batters: batters, Pitcher: int(l.Pitcher)}
}

// mapOutcome accepts the labels servers have used for results.
func mapOutcome(label string) (domain.Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "win", "won", "勝利":
		return domain.OutcomeWin, nil
	case "loss", "lose", "lost", "敗北":
		return domain.OutcomeLoss, nil
	case "draw", "tie", "引き分け":
		return domain.OutcomeDraw, nil
	default:
		return "", fmt.Errorf("unknown result label %q", label)
	}
}
