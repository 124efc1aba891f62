package app

import (
	"fmt"
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
	"github.com/abhisek/pandamj/internal/screens/home"
	"github.com/abhisek/pandamj/internal/screens/welcome"
	"github.com/abhisek/pandamj/internal/settings"
	"github.com/abhisek/pandamj/internal/store"
)

func testDeps() screen.Deps {
	l := logrus.New()
	l.SetOutput(io.Discard)
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	return screen.Deps{
		Catalog:  catalog.Default(),
		Progress: progress.NewStore(store.NewMemoryRepo(), progress.WithLogger(l)),
		Settings: settings.Default(),
		Log:      l,
		Now:      func() time.Time { return now },
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// update runs msg through the model and feeds back a single resulting
// navigation message, the way the runtime would.
func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestNewAppModel_StartScreen(t *testing.T) {
	if _, ok := newAppModel(testDeps(), Options{}).router.Active().(*welcome.WelcomeScreen); !ok {
		t.Error("default start should be the splash")
	}
	if _, ok := newAppModel(testDeps(), Options{SkipSplash: true}).router.Active().(*home.HomeScreen); !ok {
		t.Error("SkipSplash should start on home")
	}
}

func TestEscPopsWhenStacked(t *testing.T) {
	m := newAppModel(testDeps(), Options{SkipSplash: true})

	_, cmd := update(m, specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("esc on the root screen should be a no-op")
	}

	m.router.Push(drill.NewExplain(m.deps))
	_, cmd = update(m, specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("esc should pop a stacked screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscGoesToCapturingScreen(t *testing.T) {
	m := newAppModel(testDeps(), Options{SkipSplash: true})
	d := drill.NewExplain(m.deps)
	m.router.Push(d)

	update(m, keyPress('g'))
	if !d.CapturingInput() {
		t.Fatal("g should open the jump prompt")
	}

	_, cmd := update(m, specialKey(tea.KeyEscape))
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc should close the prompt, not pop the drill")
		}
	}
	if d.CapturingInput() {
		t.Error("esc should have closed the prompt")
	}
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testDeps(), Options{SkipSplash: true})
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestView_HeaderAndFooter(t *testing.T) {
	m := newAppModel(testDeps(), Options{SkipSplash: true})
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.router.Push(drill.NewExplain(m.deps))

	content := fmt.Sprint(m.View().Content)
	for _, want := range []string{"PandaMJ", "Explain", "Q 1/120", "Submit"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newAppModel(testDeps(), Options{SkipSplash: true})
	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if strings.Contains(fmt.Sprint(m.View().Content), "EXPLAIN") {
		t.Error("a tiny terminal should show the size message instead of the menu")
	}
}
