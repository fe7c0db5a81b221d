package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/testutil"
	"github.com/preston-bernstein/dugout/internal/view"
)

func TestRenderUnauthenticatedShowsLoginHint(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, "Bakers").RenderUnauthenticated()
	if !strings.Contains(buf.String(), "login <username> <password>") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderShellMarksInitialSection(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, "Bakers").RenderAuthenticatedShell(view.SectionOrder)
	out := buf.String()
	if !strings.Contains(out, "[order]") || strings.Contains(out, "login") {
		t.Fatalf("unexpected shell %q", out)
	}
}

func TestRenderScheduleNewestFirst(t *testing.T) {
	var buf bytes.Buffer
	state := testutil.SampleGameState("Bakers", 2)
	state.Schedule[1].Outcome = domain.OutcomeLoss
	NewRenderer(&buf, "Bakers").RenderSection(view.SectionSchedule, state)

	out := buf.String()
	first := strings.Index(out, "(LOSS)")
	second := strings.Index(out, "(WIN)")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected newest result first, got %q", out)
	}
	if state.Schedule[0].Outcome != domain.OutcomeWin {
		t.Fatalf("rendering must not reorder the schedule")
	}
}

func TestRenderEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, "Bakers").RenderSection(view.SectionSchedule, testutil.SampleGameState("Bakers", 0))
	if !strings.Contains(buf.String(), "no games played yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderOrderWithCurrentLineup(t *testing.T) {
	var buf bytes.Buffer
	state := testutil.SampleGameState("Bakers", 0)
	order := testutil.SampleLineup()
	state.CurrentOrder = &order
	NewRenderer(&buf, "Bakers").RenderSection(view.SectionOrder, state)

	out := buf.String()
	if !strings.Contains(out, "-- Order: Bakers --") {
		t.Fatalf("missing header in %q", out)
	}
	if !strings.Contains(out, "P. Taro Yamada (#1)") {
		t.Fatalf("expected pitcher resolved by id, got %q", out)
	}
	if !strings.Contains(out, "*  1  Taro Yamada") || !strings.Contains(out, "   11  Kenji Kobayashi") {
		t.Fatalf("expected only lineup members starred, got %q", out)
	}
}

func TestRenderOrderUnknownTeam(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, "Owls").RenderSection(view.SectionOrder, testutil.SampleGameState("Bakers", 0))
	if !strings.Contains(buf.String(), `team "Owls" not found`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderHomeAndNotice(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "Bakers")
	r.RenderSection(view.SectionHome, testutil.SampleGameState("Bakers", 1))
	r.Notify(view.Warning("Please log in."))

	out := buf.String()
	if !strings.Contains(out, "last game: Bakers 1 - 0 Anglers (WIN)") {
		t.Fatalf("unexpected home %q", out)
	}
	if !strings.Contains(out, "[warning] Please log in.") {
		t.Fatalf("unexpected notice %q", out)
	}
}
