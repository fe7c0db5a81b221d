package domain

// Outcome is the result of a game from the user's team perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomeDraw Outcome = "DRAW"
)

// GameResult is a completed game. Values are immutable once received.
type GameResult struct {
	HomeTeam  string  `json:"homeTeam"`
	AwayTeam  string  `json:"awayTeam"`
	HomeScore int     `json:"homeScore"`
	AwayScore int     `json:"awayScore"`
	Outcome   Outcome `json:"outcome"`
}
