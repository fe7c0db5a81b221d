package testutil

import "github.com/preston-bernstein/dugout/internal/domain"

// SampleTeam returns a small roster with two pitchers and nine batters.
func SampleTeam(name string) domain.Team {
	players := []domain.Player{{ID: 1, Name: "Taro Yamada", Position: "P", IsPitcher: true}}
	for id := 2; id <= 10; id++ {
		players = append(players, domain.Player{ID: domain.PlayerID(id), Name: "Batter", Position: "IF"})
	}
	players = append(players, domain.Player{ID: 11, Name: "Kenji Kobayashi", Position: "P", IsPitcher: true})
	return domain.Team{Name: name, Players: players}
}

// SampleLineup returns a lineup that is valid against SampleTeam.
func SampleLineup() domain.Lineup {
	return domain.Lineup{Batters: [9]domain.PlayerID{2, 3, 4, 5, 6, 7, 8, 9, 10}, Pitcher: 1}
}

// SampleGameState builds a state with one team and the given number of results.
func SampleGameState(team string, results int) domain.GameState {
	state := domain.GameState{
		Teams:    []domain.Team{SampleTeam(team)},
		Schedule: make([]domain.GameResult, 0, results),
	}
	for i := 0; i < results; i++ {
		state.Schedule = append(state.Schedule, domain.GameResult{
			HomeTeam:  team,
			AwayTeam:  "Anglers",
			HomeScore: i + 1,
			AwayScore: i,
			Outcome:   domain.OutcomeWin,
		})
	}
	return state
}
