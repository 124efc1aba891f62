// Package welcome is the splash that deals an opening hand before the
// home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

const (
	tickInterval = 120 * time.Millisecond
	// holdTicks is how long the full splash stays up once the deal is done.
	holdTicks = 25
)

// openingHand is dealt one tile per tick. Three suits, so the player
// still has a void suit to choose.
var openingHand = []string{
	"1m", "2m", "3m", "5m",
	"4p", "5p", "5p", "9p",
	"2s", "3s", "6s", "7s", "8s",
}

const pandaArt = `  ╭───────────╮
  │  ●     ●  │
  │ ( ◕ ᴥ ◕ ) │
  │  ╰──┬──╯  │
  ╰─────┴─────╯`

type tickMsg time.Time

// WelcomeScreen deals openingHand, shows the banner and then hands over
// to the screen built by next. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) dealt() int {
	return min(w.ticks, len(openingHand))
}

func (w *WelcomeScreen) dealDone() bool {
	return w.ticks >= len(openingHand)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.ticks++
		if w.ticks >= len(openingHand)+holdTicks {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

// transition fires once; later keys and ticks are ignored.
func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Render(pandaArt),
		"",
		w.renderDeal(),
	}

	if w.dealDone() {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Sichuan blood battle, one hand at a time")
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			tagline,
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// renderDeal shows the tiles dealt so far followed by face-down backs.
func (w *WelcomeScreen) renderDeal() string {
	n := w.dealt()
	backs := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(strings.TrimSpace(strings.Repeat("▮ ", len(openingHand)-n)))
	if n == 0 {
		return backs
	}
	return strings.TrimSpace(components.RenderTiles(openingHand[:n]) + " " + backs)
}
