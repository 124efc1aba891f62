// Package stats is the learner statistics screen.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/layout"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

// recentLimit caps the recent answers list.
const recentLimit = 8

type scope int

const (
	scopeAll scope = iota
	scopeExplain
	scopeChallenge
)

var scopeLabels = []string{"All", "Explain", "Challenge"}

type loadedMsg struct {
	snap    progress.Snapshot
	overall progress.Overview
	byMode  map[progress.Mode]progress.Overview
}

// StatsScreen shows accuracy, chapter coverage and stage stars.
type StatsScreen struct {
	deps   screen.Deps
	data   loadedMsg
	scope  scope
	loaded bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen. Data is loaded by Init.
func New(deps screen.Deps) *StatsScreen {
	return &StatsScreen{deps: deps}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load
}

func (s *StatsScreen) load() tea.Msg {
	snap := s.deps.Progress.Load(context.Background())
	lookup := s.deps.Catalog.ChapterOf
	now := s.deps.Clock()
	return loadedMsg{
		snap:    snap,
		overall: progress.Summarize(snap.AnswerHistory, lookup, now),
		byMode:  progress.SummarizeByMode(snap.AnswerHistory, lookup, now),
	}
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Mode"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.data = msg
		s.loaded = true
	case screen.ResumedMsg:
		return s, s.load
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			s.scope = (s.scope + scope(len(scopeLabels)) - 1) % scope(len(scopeLabels))
		case "right", "l", "tab":
			s.scope = (s.scope + 1) % scope(len(scopeLabels))
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// overview returns the summary for the active scope.
func (s *StatsScreen) overview() progress.Overview {
	switch s.scope {
	case scopeExplain:
		return s.data.byMode[progress.ModeExplain]
	case scopeChallenge:
		return s.data.byMode[progress.ModeChallenge]
	default:
		return s.data.overall
	}
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, s.renderTabs())
	sections = append(sections, s.renderOverview())
	sections = append(sections, s.renderChapters(cw))
	sections = append(sections, s.renderStages())
	if recent := s.renderRecent(); recent != "" {
		sections = append(sections, recent)
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (s *StatsScreen) renderTabs() string {
	tabs := make([]string, len(scopeLabels))
	for i, label := range scopeLabels {
		if scope(i) == s.scope {
			tabs[i] = theme.Selected.Render("[" + label + "]")
		} else {
			tabs[i] = theme.Locked.Render(" " + label + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (s *StatsScreen) renderOverview() string {
	o := s.overview()
	if o.TotalAnswered == 0 {
		return theme.Hint.Render("No answers yet. Start a drill from the home menu!")
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	return strings.Join([]string{
		dim.Render("Answered  ") + val.Render(fmt.Sprintf("%d", o.TotalAnswered)),
		dim.Render("Correct   ") + val.Render(fmt.Sprintf("%d", o.TotalCorrect)),
		dim.Render("Accuracy  ") + val.Render(fmt.Sprintf("%.0f%%", o.Accuracy*100)),
		dim.Render("Today     ") + val.Render(fmt.Sprintf("%d", o.TodayAnswerCount)),
	}, "\n")
}

func (s *StatsScreen) renderChapters(cw int) string {
	o := s.overview()
	counts := s.deps.Catalog.Stats()
	labelWidth := lo.Max(lo.Map(catalog.AllChapters(), func(ch catalog.ChapterID, _ int) int {
		return lipgloss.Width(ch.DisplayName())
	}))

	lines := []string{theme.Subtitle.Render("Chapters")}
	for _, ch := range catalog.AllChapters() {
		bar := components.ProgressBar{
			Label:      ch.DisplayName(),
			LabelWidth: labelWidth,
			Done:       o.StageProgress[ch],
			Total:      counts[ch],
			Width:      cw,
		}
		lines = append(lines, bar.View())
	}
	return strings.Join(lines, "\n")
}

func (s *StatsScreen) renderStages() string {
	stages := s.deps.Catalog.Stages()
	stars := lo.Sum(lo.Values(s.data.snap.StageStars))
	header := theme.Subtitle.Render(fmt.Sprintf("Stages  ★ %d/%d  cleared %d/%d",
		stars, len(stages)*3, len(s.data.snap.CompletedStageIDs), len(stages)))

	cells := lo.Map(stages, func(st catalog.Stage, i int) string {
		return fmt.Sprintf("%2d %s", i+1, components.StarRating(s.data.snap.StageStars[st.ID], 3))
	})
	var rows []string
	for _, chunk := range lo.Chunk(cells, 4) {
		rows = append(rows, strings.Join(chunk, "   "))
	}
	mistakes := theme.Hint.Render(fmt.Sprintf("Mistakes to review: %d", len(s.data.snap.MistakeQuestionIDs)))
	return header + "\n" + strings.Join(rows, "\n") + "\n" + mistakes
}

func (s *StatsScreen) renderRecent() string {
	history := s.data.snap.AnswerHistory
	if s.scope != scopeAll {
		mode := progress.ModeExplain
		if s.scope == scopeChallenge {
			mode = progress.ModeChallenge
		}
		history = lo.Filter(history, func(r progress.AnswerRecord, _ int) bool { return r.Mode == mode })
	}
	if len(history) == 0 {
		return ""
	}

	lines := []string{theme.Subtitle.Render("Recent answers")}
	for _, r := range history[:min(len(history), recentLimit)] {
		mark := theme.Correct.Render("✓")
		if !r.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s %s  %-14s %-9s %5.1fs",
			mark,
			theme.Hint.Render(r.CreatedAt.Local().Format("Jan 02 15:04")),
			r.QuestionID,
			r.Mode.DisplayName(),
			float64(r.ElapsedMs)/1000,
		))
	}
	return strings.Join(lines, "\n")
}
