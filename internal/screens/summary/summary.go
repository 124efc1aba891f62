package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/session"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/layout"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

// SummaryScreen displays the settlement of a stage challenge.
type SummaryScreen struct {
	stage   catalog.Stage
	summary session.StageSummary
	next    func() tea.Cmd
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. next starts the following stage and is
// nil when there is no unlocked stage to continue to.
func New(stage catalog.Stage, summary session.StageSummary, next func() tea.Cmd) *SummaryScreen {
	return &SummaryScreen{stage: stage, summary: summary, next: next}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Stage Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if s.next != nil {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Next stage"})
	}
	// Esc also continues; one hint covers both.
	return append(hints, layout.KeyHint{Key: "H", Description: "Home"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n":
			if s.next != nil {
				return s, s.next()
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	if sum.Stars > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
			fmt.Sprintf("%s cleared", s.stage.Title)))
	} else {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("%s: keep practising", s.stage.Title)))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.StarRating(sum.Stars, 3)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Correct: %d/%d        Accuracy: %.0f%%        Time: %s",
		sum.Correct, sum.Total, sum.Accuracy*100, formatMs(sum.ElapsedMs))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Best time: %s", formatMs(sum.BestTimeMs))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(sum.NewlyUnlocked) > 0 {
		b.WriteString(center(theme.Correct, "Unlocked: "+strings.Join(sum.NewlyUnlocked, ", ")))
		b.WriteString("\n")
	}
	switch {
	case sum.NextLockedStageID != "":
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Next locked: %s", sum.NextLockedStageID)))
	default:
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow), "Every stage is open."))
	}
	b.WriteString("\n")

	if len(s.stage.RecommendedRuleTags) > 0 && sum.Stars < 3 {
		b.WriteString("\n")
		b.WriteString(center(theme.Hint, "Review: "+strings.Join(s.stage.RecommendedRuleTags, ", ")))
	}

	return b.String()
}

// formatMs renders a duration in milliseconds as m:ss.
func formatMs(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
