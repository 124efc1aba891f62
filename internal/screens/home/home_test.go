package home

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/screens/drill"
	"github.com/abhisek/pandamj/internal/screens/stages"
	"github.com/abhisek/pandamj/internal/settings"
	"github.com/abhisek/pandamj/internal/store"
)

var testNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func testDeps() screen.Deps {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return screen.Deps{
		Catalog:  catalog.Default(),
		Progress: progress.NewStore(store.NewMemoryRepo(), progress.WithLogger(l)),
		Settings: settings.Default(),
		Log:      l,
		Now:      func() time.Time { return testNow },
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestHome_FreshStats(t *testing.T) {
	h := New(testDeps())

	if h.stats.stars != 0 || h.stats.mistakes != 0 || h.stats.today != 0 {
		t.Errorf("stats = %+v, want zero counts", h.stats)
	}
	if h.stats.unlocked != 1 || h.stats.stages != 12 {
		t.Errorf("stages = %d/%d, want 1/12", h.stats.unlocked, h.stats.stages)
	}
	if !h.menu.Items[itemMistakes].Disabled {
		t.Error("MISTAKES should be disabled with no mistakes")
	}
	if h.mascotVariant() != MascotIdle {
		t.Errorf("mascot = %v, want idle", h.mascotVariant())
	}
}

func TestHome_StatsFromProgress(t *testing.T) {
	deps := testDeps()
	ctx := context.Background()
	deps.Progress.SaveStageResult(ctx, "stage-01", 2, 30000)
	deps.Progress.RecordAnswer(ctx, progress.AnswerRecord{
		QuestionID: "opening-001", Mode: progress.ModeExplain, CreatedAt: testNow,
	})

	h := New(deps)
	if h.stats.stars != 2 {
		t.Errorf("stars = %d, want 2", h.stats.stars)
	}
	if h.stats.unlocked != 2 {
		t.Errorf("unlocked = %d, want 2", h.stats.unlocked)
	}
	if h.stats.mistakes != 1 || h.stats.today != 1 {
		t.Errorf("mistakes=%d today=%d, want 1 and 1", h.stats.mistakes, h.stats.today)
	}
	if h.menu.Items[itemMistakes].Disabled {
		t.Error("MISTAKES should be enabled")
	}
}

func TestHome_ResumedRefreshes(t *testing.T) {
	deps := testDeps()
	h := New(deps)

	deps.Progress.AppendMistake(context.Background(), "meld-004")
	h.Update(screen.ResumedMsg{})

	if h.stats.mistakes != 1 {
		t.Errorf("mistakes = %d after resume, want 1", h.stats.mistakes)
	}
}

func TestHome_RefreshKeepsCursor(t *testing.T) {
	h := New(testDeps())
	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	if h.menu.Selected != itemProgress {
		t.Fatalf("Selected = %d, want PROGRESS", h.menu.Selected)
	}

	h.Update(screen.ResumedMsg{})
	if h.menu.Selected != itemProgress {
		t.Errorf("Selected = %d after refresh, want PROGRESS", h.menu.Selected)
	}
}

func TestHome_ExplainPushesDrill(t *testing.T) {
	h := New(testDeps())
	_, cmd := h.Update(specialKey(tea.KeyEnter))

	if _, ok := pushed(t, cmd).(*drill.DrillScreen); !ok {
		t.Error("EXPLAIN should push a drill screen")
	}
}

func TestHome_ChallengePushesStagePicker(t *testing.T) {
	h := New(testDeps())
	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))

	if _, ok := pushed(t, cmd).(*stages.StagesScreen); !ok {
		t.Error("CHALLENGE should push the stage picker")
	}
}

func TestHome_MascotVariants(t *testing.T) {
	h := New(testDeps())

	h.stats.today = busyDay
	if h.mascotVariant() != MascotCelebrating {
		t.Error("busy day should celebrate")
	}
	h.stats.mistakes = mistakeAlert
	if h.mascotVariant() != MascotAlert {
		t.Error("many mistakes should alert")
	}
}

func TestHome_View(t *testing.T) {
	h := New(testDeps())

	full := h.View(120, 40)
	for _, want := range []string{"STARS", "STAGES", "EXPLAIN", "RULES"} {
		if !strings.Contains(full, want) {
			t.Errorf("full view missing %q", want)
		}
	}

	compact := h.View(80, 18)
	if !strings.Contains(compact, "P · A · N") {
		t.Error("compact view should use the one-line title")
	}
	if !strings.Contains(compact, "EXIT") {
		t.Error("compact view should still list the menu")
	}
}
