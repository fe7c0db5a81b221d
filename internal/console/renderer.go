// Package console is a line-oriented terminal front end: a text view.Renderer
// and a command loop that drives the session controller.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/view"
)

// Renderer writes views as plain text.
type Renderer struct {
	mu   sync.Mutex
	out  io.Writer
	team string
}

// NewRenderer renders to out. team selects the roster shown on the order page.
func NewRenderer(out io.Writer, team string) *Renderer {
	return &Renderer{out: out, team: team}
}

func (r *Renderer) RenderUnauthenticated() {
	r.write(func(b *strings.Builder) {
		b.WriteString("== Login ==\n")
		b.WriteString("login <username> <password>\n")
	})
}

func (r *Renderer) RenderAuthenticatedShell(initial view.Section) {
	r.write(func(b *strings.Builder) {
		b.WriteString("== dugout ==\n")
		names := make([]string, 0, len(view.Sections))
		for _, s := range view.Sections {
			if !s.Protected() {
				continue
			}
			if s == initial {
				names = append(names, "["+string(s)+"]")
				continue
			}
			names = append(names, string(s))
		}
		fmt.Fprintf(b, "sections: %s\n", strings.Join(names, " "))
	})
}

func (r *Renderer) RenderSection(section view.Section, state domain.GameState) {
	r.write(func(b *strings.Builder) {
		switch section {
		case view.SectionOrder:
			r.renderOrder(b, state)
		case view.SectionSchedule:
			renderSchedule(b, state)
		default:
			renderHome(b, state)
		}
	})
}

func (r *Renderer) Notify(n view.Notice) {
	r.write(func(b *strings.Builder) {
		fmt.Fprintf(b, "[%s] %s\n", n.Level, n.Text)
	})
}

func (r *Renderer) write(fn func(b *strings.Builder)) {
	var b strings.Builder
	fn(&b)
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, b.String())
}

func renderHome(b *strings.Builder, state domain.GameState) {
	b.WriteString("-- Home --\n")
	fmt.Fprintf(b, "teams: %s\n", strings.Join(state.TeamNames(), ", "))
	if latest, ok := state.LatestResult(); ok {
		fmt.Fprintf(b, "last game: %s\n", formatResult(latest))
	} else {
		b.WriteString("no games played yet\n")
	}
}

func (r *Renderer) renderOrder(b *strings.Builder, state domain.GameState) {
	page, ok := view.BuildOrderPage(state, r.team)
	if !ok {
		fmt.Fprintf(b, "-- Order --\nteam %q not found\n", r.team)
		return
	}
	writeOrderPage(b, page)
}

// writeOrderPage lists candidates in roster order. Players in the current
// lineup are starred.
func writeOrderPage(b *strings.Builder, page view.OrderPage) {
	fmt.Fprintf(b, "-- Order: %s --\n", page.Team)
	b.WriteString("batters:\n")
	for _, p := range page.Batters {
		fmt.Fprintf(b, " %s%3d  %s %s\n", mark(page, p.ID), p.ID, p.Name, p.Position)
	}
	b.WriteString("pitchers:\n")
	for _, p := range page.Pitchers {
		fmt.Fprintf(b, " %s%3d  %s\n", mark(page, p.ID), p.ID, p.Name)
	}
	if page.Current == nil {
		b.WriteString("current order: none\n")
		return
	}
	b.WriteString("current order:\n")
	for i, id := range page.Current.Batters {
		fmt.Fprintf(b, "  %d. %s\n", i+1, playerLabel(page, id))
	}
	fmt.Fprintf(b, "  P. %s\n", playerLabel(page, page.Current.Pitcher))
}

func mark(page view.OrderPage, id domain.PlayerID) string {
	if page.Current != nil && page.Current.Contains(id) {
		return "*"
	}
	return " "
}

func renderSchedule(b *strings.Builder, state domain.GameState) {
	b.WriteString("-- Schedule --\n")
	results := state.ScheduleNewestFirst()
	if len(results) == 0 {
		b.WriteString("no games played yet\n")
		return
	}
	for i, g := range results {
		fmt.Fprintf(b, "%3d. %s\n", len(results)-i, formatResult(g))
	}
}

func formatResult(g domain.GameResult) string {
	return fmt.Sprintf("%s %d - %d %s (%s)", g.HomeTeam, g.HomeScore, g.AwayScore, g.AwayTeam, g.Outcome)
}

func playerLabel(page view.OrderPage, id domain.PlayerID) string {
	if name := page.PlayerName(id); name != "" {
		return fmt.Sprintf("%s (#%d)", name, id)
	}
	return fmt.Sprintf("#%d", id)
}
