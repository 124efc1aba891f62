// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/screens/home"
	"github.com/abhisek/pandamj/internal/screens/welcome"
	"github.com/abhisek/pandamj/internal/ui/layout"
)

// Options tune how the program starts.
type Options struct {
	// SkipSplash opens the home screen directly.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screen.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel on the splash or the home screen.
func newAppModel(deps screen.Deps, opts Options) AppModel {
	var first screen.Screen
	if opts.SkipSplash {
		first = home.New(deps)
	} else {
		first = welcome.New(func() screen.Screen { return home.New(deps) })
	}
	return AppModel{
		deps:   deps,
		router: router.New(first, router.WithLogger(deps.Log)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(m.router.Breadcrumb(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(deps screen.Deps, opts Options) error {
	p := tea.NewProgram(newAppModel(deps, opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
