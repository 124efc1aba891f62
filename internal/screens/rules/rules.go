// Package rules is the strategy handbook screen.
package rules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/ui/layout"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

// RulesScreen lists the rule tags of one chapter at a time.
type RulesScreen struct {
	deps         screen.Deps
	chapters     []catalog.ChapterID
	chapter      int
	scrollOffset int
	maxOffset    int
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)
var _ screen.StatusProvider = (*RulesScreen)(nil)

// New creates a RulesScreen on the first chapter.
func New(deps screen.Deps) *RulesScreen {
	return &RulesScreen{deps: deps, chapters: catalog.AllChapters()}
}

func (s *RulesScreen) Init() tea.Cmd {
	return nil
}

func (s *RulesScreen) Title() string {
	return "Rules"
}

// Status shows the chapter position.
func (s *RulesScreen) Status() string {
	return fmt.Sprintf("%d/%d", s.chapter+1, len(s.chapters))
}

func (s *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Chapter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.setChapter(s.chapter - 1)
	case "right", "l", "tab":
		s.setChapter(s.chapter + 1)
	case "up", "k":
		s.scrollOffset = max(s.scrollOffset-1, 0)
	case "down", "j":
		s.scrollOffset = min(s.scrollOffset+1, s.maxOffset)
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// setChapter wraps i into range and resets the scroll.
func (s *RulesScreen) setChapter(i int) {
	n := len(s.chapters)
	s.chapter = (i%n + n) % n
	s.scrollOffset = 0
}

func (s *RulesScreen) View(width, height int) string {
	ch := s.chapters[s.chapter]
	cw := min(width-4, 76)

	header := []string{
		s.renderTabs(),
		"",
		theme.Selected.Render(ch.DisplayName()),
		theme.Hint.Render(ch.Meta().Summary),
		"",
	}

	var body []string
	rules := s.deps.Catalog.RulesByChapter(ch)
	if len(rules) == 0 {
		body = append(body, theme.Hint.Render("No rules in this chapter yet."))
	}
	for _, r := range rules {
		body = append(body, strings.Split(s.renderRule(r, cw), "\n")...)
		body = append(body, "")
	}

	visible := max(height-len(header), 1)
	s.maxOffset = max(len(body)-visible, 0)
	s.scrollOffset = min(s.scrollOffset, s.maxOffset)
	end := min(s.scrollOffset+visible, len(body))

	lines := append(header, body[s.scrollOffset:end]...)
	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines, "\n"))
}

func (s *RulesScreen) renderTabs() string {
	tabs := make([]string, len(s.chapters))
	for i, ch := range s.chapters {
		if i == s.chapter {
			tabs[i] = theme.Selected.Render("[" + ch.DisplayName() + "]")
		} else {
			tabs[i] = theme.Locked.Render(ch.DisplayName())
		}
	}
	return strings.Join(tabs, "  ")
}

func (s *RulesScreen) renderRule(r catalog.RuleTag, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("◆ " + r.Title),
		wrap.Foreground(theme.Secondary).Italic(true).Render("“" + r.Mnemonic + "”"),
		wrap.Foreground(theme.Text).Render(r.Description),
	}
	if len(r.ExampleQuestionIDs) > 0 {
		lines = append(lines, theme.Hint.Render("Examples: "+strings.Join(r.ExampleQuestionIDs, ", ")))
	}
	return strings.Join(lines, "\n")
}
