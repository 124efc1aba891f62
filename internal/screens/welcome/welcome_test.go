package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
)

type homeStub struct{}

func (s *homeStub) Init() tea.Cmd                          { return nil }
func (s *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *homeStub) View(int, int) string                   { return "home" }
func (s *homeStub) Title() string                          { return "Home" }

func newSplash() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func tickN(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func showsBanner(view string) bool {
	return strings.Contains(view, "one hand at a time")
}

func TestDealOneTilePerTick(t *testing.T) {
	w, _ := newSplash()

	if got := w.dealt(); got != 0 {
		t.Fatalf("dealt = %d before any tick", got)
	}
	if got := strings.Count(w.View(100, 30), "▮"); got != len(openingHand) {
		t.Errorf("face-down tiles = %d, want %d", got, len(openingHand))
	}

	tickN(w, 3)
	view := w.View(100, 30)
	if w.dealt() != 3 || strings.Count(view, "▮") != len(openingHand)-3 {
		t.Errorf("after 3 ticks dealt=%d, view:\n%s", w.dealt(), view)
	}
	if showsBanner(view) {
		t.Error("banner should wait for the whole hand")
	}
}

func TestBannerAfterDeal(t *testing.T) {
	w, _ := newSplash()
	tickN(w, len(openingHand))

	view := w.View(100, 30)
	if !showsBanner(view) {
		t.Error("banner should show once the hand is dealt")
	}
	if strings.Contains(view, "▮") {
		t.Error("no face-down tiles should remain")
	}
}

func TestAutoAdvanceAfterHold(t *testing.T) {
	w, built := newSplash()

	cmd := tickN(w, len(openingHand)+holdTicks-1)
	if *built != 0 {
		t.Fatal("splash advanced before the hold finished")
	}
	if cmd == nil {
		t.Fatal("ticks should keep coming during the hold")
	}

	cmd = tickN(w, 1)
	if cmd == nil {
		t.Fatal("expected a transition after the hold")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if *built != 1 {
		t.Errorf("home built %d times, want 1", *built)
	}
	if cmd := tickN(w, 1); cmd != nil {
		t.Error("ticks after the transition should stop")
	}
}

func TestAnyKeySkipsOnce(t *testing.T) {
	w, built := newSplash()
	tickN(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("a key should skip the splash")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen == nil {
		t.Fatalf("expected ReplaceScreenMsg with a screen, got %#v", cmd())
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("a second key should do nothing")
	}
	if *built != 1 {
		t.Errorf("home built %d times, want 1", *built)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newSplash()
	if w.Title() != "" {
		t.Errorf("Title = %q, want empty", w.Title())
	}
}

func TestNarrowBannerFallsBack(t *testing.T) {
	if got := RenderBanner(30); !strings.Contains(got, "P · A · N · D · A · M · J") {
		t.Errorf("narrow banner = %q", got)
	}
	if got := RenderBanner(80); strings.Contains(got, "·") {
		t.Error("wide banner should use tiles")
	}
}
