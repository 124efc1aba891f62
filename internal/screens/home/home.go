// Package home is the arcade-style main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/samber/lo"

	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/progression"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/screens/drill"
	"github.com/abhisek/pandamj/internal/screens/rules"
	"github.com/abhisek/pandamj/internal/screens/stages"
	"github.com/abhisek/pandamj/internal/screens/stats"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/layout"
)

// Menu positions.
const (
	itemExplain = iota
	itemChallenge
	itemMistakes
	itemProgress
	itemRules
	itemExit
)

var menuLabels = []string{"EXPLAIN", "CHALLENGE", "MISTAKES", "PROGRESS", "RULES", "EXIT"}

// mistakeAlert is the mistake count at which the panda starts to worry.
const mistakeAlert = 5

// busyDay is the answered-today count that makes the panda celebrate.
const busyDay = 20

type dashboard struct {
	stars    int
	unlocked int
	stages   int
	mistakes int
	today    int
	degraded bool
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps  screen.Deps
	menu  components.Menu
	stats dashboard
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen and loads the learner's stats.
func New(deps screen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.refresh()
	return h
}

// refresh reloads stats and rebuilds the menu, keeping the cursor.
func (h *HomeScreen) refresh() {
	snap := h.deps.Progress.Load(context.Background())
	all := h.deps.Catalog.Stages()
	gate := progression.UnlockStages(snap, all)
	overview := progress.Summarize(snap.AnswerHistory, h.deps.Catalog.ChapterOf, h.deps.Clock())

	h.stats = dashboard{
		stars:    lo.Sum(lo.Values(snap.StageStars)),
		unlocked: len(gate.UnlockedStageIDs),
		stages:   len(all),
		mistakes: len(snap.MistakeQuestionIDs),
		today:    overview.TodayAnswerCount,
		degraded: h.deps.Progress.Degraded(),
	}

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	h.menu.Select(selected)
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	deps := h.deps
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := make([]components.MenuItem, len(menuLabels))
	for i, label := range menuLabels {
		items[i].Label = label
	}
	items[itemExplain].Action = push(func() screen.Screen { return drill.NewExplain(deps) })
	items[itemChallenge].Action = push(func() screen.Screen { return stages.New(deps) })
	items[itemMistakes].Action = push(func() screen.Screen { return drill.NewMistakes(deps) })
	items[itemMistakes].Disabled = h.stats.mistakes == 0
	items[itemProgress].Action = push(func() screen.Screen { return stats.New(deps) })
	items[itemRules].Action = push(func() screen.Screen { return rules.New(deps) })
	items[itemExit].Action = func() tea.Cmd { return tea.Quit }
	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.ResumedMsg); ok {
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	switch {
	case h.stats.mistakes >= mistakeAlert:
		return MascotAlert
	case h.stats.today >= busyDay:
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100
	tiny := termHeight < 28

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if h.stats.degraded {
		sections = append(sections, renderStorageNote(cw))
	}

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}
	if tiny {
		sections = append(sections, renderArcadeMenuCompact(menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderArcadeMenu(menuLabels, h.menu.Selected, cw, disabled))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-6", Description: "Jump"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
