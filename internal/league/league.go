// Package league is the in-memory game backend used by the development game
// server: one season per user, seeded simulation, server-side order checks.
package league

import (
	"math/rand"
	"sync"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/lineup"
)

const maxRuns = 9

// Config controls a league.
type Config struct {
	Team     string
	Opponent string
	Seed     int64
}

type season struct {
	schedule []domain.GameResult
	order    *domain.Lineup
}

// League holds every user's season. It is safe for concurrent use.
type League struct {
	mu      sync.Mutex
	user    domain.Team
	opp     domain.Team
	rng     *rand.Rand
	seasons map[string]*season
}

// New constructs a league. Empty names fall back to defaults.
func New(cfg Config) *League {
	team := cfg.Team
	if team == "" {
		team = "Bakers"
	}
	opp := cfg.Opponent
	if opp == "" || opp == team {
		opp = DefaultOpponent
	}
	return &League{
		user:    userRoster(team),
		opp:     opponentRoster(opp),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		seasons: make(map[string]*season),
	}
}

// Teams returns copies of the rosters, user team first.
func (l *League) Teams() []domain.Team {
	return domain.GameState{Teams: []domain.Team{l.user, l.opp}}.Clone().Teams
}

// UserTeam is the name of the team every user manages.
func (l *League) UserTeam() string {
	return l.user.Name
}

// State returns a copy of the user's season.
func (l *League) State(user string) domain.GameState {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.seasonLocked(user)
	return domain.GameState{
		Teams:        []domain.Team{l.user, l.opp},
		Schedule:     s.schedule,
		CurrentOrder: s.order,
	}.Clone()
}

// SubmitOrder checks the lineup against the roster and stores it.
func (l *League) SubmitOrder(user string, order domain.Lineup) error {
	batters, pitcher := lineup.FromLineup(order)
	if _, err := lineup.Validate(batters, pitcher); err != nil {
		return &OrderError{Reason: err.Error()}
	}

	for _, id := range order.Batters {
		if _, ok := l.user.Player(id); !ok {
			return &OrderError{PlayerID: id, Reason: "is not on the " + l.user.Name + " roster"}
		}
	}
	p, ok := l.user.Player(order.Pitcher)
	if !ok {
		return &OrderError{PlayerID: order.Pitcher, Reason: "is not on the " + l.user.Name + " roster"}
	}
	if !p.IsPitcher {
		return &OrderError{PlayerID: order.Pitcher, Reason: "is not a pitcher"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	stored := order
	l.seasonLocked(user).order = &stored
	return nil
}

// Simulate plays the next game for user and appends it to the schedule.
// Home and away alternate by day.
func (l *League) Simulate(user string) domain.GameResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.seasonLocked(user)

	userRuns := l.rng.Intn(maxRuns + 1)
	oppRuns := l.rng.Intn(maxRuns + 1)
	result := domain.GameResult{Outcome: outcome(userRuns, oppRuns)}
	if len(s.schedule)%2 == 0 {
		result.HomeTeam, result.AwayTeam = l.user.Name, l.opp.Name
		result.HomeScore, result.AwayScore = userRuns, oppRuns
	} else {
		result.HomeTeam, result.AwayTeam = l.opp.Name, l.user.Name
		result.HomeScore, result.AwayScore = oppRuns, userRuns
	}
	s.schedule = append(s.schedule, result)
	return result
}

// Forget drops a user's season.
func (l *League) Forget(user string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seasons, user)
}

func (l *League) seasonLocked(user string) *season {
	s, ok := l.seasons[user]
	if !ok {
		s = &season{schedule: make([]domain.GameResult, 0)}
		l.seasons[user] = s
	}
	return s
}

func outcome(us, them int) domain.Outcome {
	switch {
	case us > them:
		return domain.OutcomeWin
	case us < them:
		return domain.OutcomeLoss
	default:
		return domain.OutcomeDraw
	}
}
