package view

import (
	"testing"

	"github.com/preston-bernstein/dugout/internal/domain"
)

func TestParseSection(t *testing.T) {
	cases := map[string]Section{
		"home":       SectionHome,
		" Schedule ": SectionSchedule,
		"ORDER":      SectionOrder,
		"login":      SectionLogin,
	}
	for raw, want := range cases {
		got, ok := ParseSection(raw)
		if !ok || got != want {
			t.Fatalf("input %q expected %s, got %s ok=%v", raw, want, got, ok)
		}
	}
	if _, ok := ParseSection("standings"); ok {
		t.Fatalf("expected unknown section to fail")
	}
}

func TestProtectedSections(t *testing.T) {
	if SectionLogin.Protected() {
		t.Fatalf("login must not require a session")
	}
	if !SectionOrder.Protected() || !SectionHome.Protected() {
		t.Fatalf("game sections require a session")
	}
}

func TestNoticeBuilders(t *testing.T) {
	if Info("a").Level != LevelInfo || Warning("b").Level != LevelWarning || Failure("c").Level != LevelError {
		t.Fatalf("unexpected notice levels")
	}
}

func TestBuildOrderPageSplitsCandidatesInRosterOrder(t *testing.T) {
	order := &domain.Lineup{Pitcher: 10}
	state := domain.GameState{
		Teams: []domain.Team{
			{Name: "Anglers", Players: []domain.Player{{ID: 101}}},
			{Name: "Bakers", Players: []domain.Player{
				{ID: 1, Name: "Taro Yamada", IsPitcher: true},
				{ID: 3, Name: "Ichiro Suzuki"},
				{ID: 2, Name: "Kenta Tanaka"},
				{ID: 10, Name: "Kenji Kobayashi", IsPitcher: true},
			}},
		},
		CurrentOrder: order,
	}

	page, ok := BuildOrderPage(state, "Bakers")
	if !ok {
		t.Fatalf("expected team to be found")
	}
	if len(page.Batters) != 2 || page.Batters[0].ID != 3 || page.Batters[1].ID != 2 {
		t.Fatalf("unexpected batters %+v", page.Batters)
	}
	if len(page.Pitchers) != 2 || page.Pitchers[0].ID != 1 {
		t.Fatalf("unexpected pitchers %+v", page.Pitchers)
	}
	if page.Current == nil || page.Current == order || page.Current.Pitcher != 10 {
		t.Fatalf("expected copied current order, got %+v", page.Current)
	}
	if page.PlayerName(10) != "Kenji Kobayashi" || page.PlayerName(99) != "" {
		t.Fatalf("unexpected name lookup")
	}

	first, ok := BuildOrderPage(state, "")
	if !ok || first.Team != "Anglers" {
		t.Fatalf("expected first team fallback, got %+v", first)
	}
	if _, ok := BuildOrderPage(state, "Missing"); ok {
		t.Fatalf("expected missing team to fail")
	}
}

func TestNopRendererSatisfiesInterface(t *testing.T) {
	var r Renderer = Nop{}
	r.RenderUnauthenticated()
	r.RenderAuthenticatedShell(SectionHome)
	r.RenderSection(SectionHome, domain.GameState{})
	r.Notify(Info("ok"))
}
