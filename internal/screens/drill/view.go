package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/layout"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	vpad, hpad := layout.Padding(s.deps.Settings.FontScale)
	inner := max(width-2*hpad, 20)

	var body string
	switch s.phase {
	case phaseFinished:
		body = s.renderFinished(inner)
	default:
		body = s.renderQuestion(inner)
	}

	return lipgloss.NewStyle().Padding(vpad, hpad).Render(body)
}

func (s *DrillScreen) renderQuestion(width int) string {
	q, ok := s.drill.Current()
	if s.phase == phaseFeedback && s.feedback != nil {
		q, ok = s.feedback.Question, true
	}
	if !ok {
		return ""
	}

	var b strings.Builder

	pos, total := s.drill.Position()
	if s.phase == phaseFeedback {
		// The drill has already moved on; keep showing the answered slot.
		pos = max(pos-1, 1)
		if s.drill.Done() {
			pos = total
		}
	}
	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%s · %s", q.Chapter.DisplayName(), typeLabel(q.Type)))
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d / %d   %s", pos, total, difficultyLabel(q.Difficulty)))
	gap := max(width-lipgloss.Width(info)-lipgloss.Width(counter), 1)
	b.WriteString(info + strings.Repeat(" ", gap) + counter)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	optionWidth := max(width/2-2, 24)
	optionsView := lipgloss.NewStyle().Width(optionWidth).Render(s.options.View())
	tableView := renderTable(q, max(width-optionWidth-2, 20))
	b.WriteString(layout.SideBySide(optionsView, tableView, s.deps.Settings.Handedness))

	if s.phase == phaseFeedback && s.feedback != nil {
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(width))
	}

	if s.jumping {
		b.WriteString("\n\n")
		b.WriteString(s.jump.View())
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return b.String()
}

// renderTable draws the hand and the visible discards.
func renderTable(q catalog.Question, width int) string {
	perRow := max((width-2)/5, 4)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	if len(q.Hand) > 0 {
		parts = append(parts, label.Render("Hand"), components.RenderTileRows(q.Hand, perRow))
	}
	if len(q.Discards) > 0 {
		parts = append(parts, "", label.Render("Discards on the table"), components.RenderTileRows(q.Discards, perRow))
	}
	if len(parts) == 0 {
		return ""
	}
	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (s *DrillScreen) renderFeedback(width int) string {
	fb := s.feedback
	res := fb.Result

	var lines []string
	if res.IsCorrect {
		lines = append(lines, theme.Correct.Render("✓ Correct!"))
	} else {
		lines = append(lines, theme.Incorrect.Render(fmt.Sprintf("✗ Not quite. Answer: %s", strings.Join(res.ExpectedOptionIDs, ", "))))
		if len(res.MissingOptionIDs) > 0 {
			lines = append(lines, theme.Hint.Render("  Missed: "+strings.Join(res.MissingOptionIDs, ", ")))
		}
		if len(res.ExtraOptionIDs) > 0 {
			lines = append(lines, theme.Hint.Render("  Not needed: "+strings.Join(res.ExtraOptionIDs, ", ")))
		}
	}

	if s.showExplanation() {
		for i, step := range fb.Question.ExplanationSteps {
			lines = append(lines, "",
				theme.Selected.Render(fmt.Sprintf("%d. %s", i+1, step.Title)),
				lipgloss.NewStyle().Width(width-4).Foreground(theme.Text).Render("   "+step.Detail))
		}
		for _, p := range fb.Question.Pitfalls {
			lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Accent).Render("Pitfall: ")+p)
		}
		if refs := s.ruleTitles(fb.Question.RuleRefs); refs != "" {
			lines = append(lines, "", theme.Hint.Render("Rules: "+refs))
		}
	}

	return strings.Join(lines, "\n")
}

func (s *DrillScreen) ruleTitles(ids []string) string {
	var titles []string
	for _, id := range ids {
		if r, ok := s.deps.Catalog.Rule(id); ok {
			titles = append(titles, r.Title)
		}
	}
	return strings.Join(titles, " · ")
}

func (s *DrillScreen) renderFinished(width int) string {
	tally := s.drill.Tally()
	_, total := s.drill.Position()

	title := "Drill complete!"
	if total == 0 {
		title = "Nothing to practise here yet."
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")
	if total > 0 {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Text).
			Render(fmt.Sprintf("Answered %d of %d · %d correct", tally.Answered(), total, tally.Correct())))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}
	return b.String()
}

func typeLabel(t catalog.QuestionType) string {
	switch t {
	case catalog.TypeDiscardBest:
		return "Best discard"
	case catalog.TypeWaitTiles:
		return "Waiting tiles"
	case catalog.TypeSafeDiscard:
		return "Safe discard"
	case catalog.TypePengOrPass:
		return "Pung or pass"
	case catalog.TypeVoidOrSwap:
		return "Void & swap"
	case catalog.TypeJudgePattern:
		return "Judge the pattern"
	case catalog.TypeTrueFalse:
		return "True or false"
	case catalog.TypeAnalyzeSituation:
		return "Read the table"
	case catalog.TypeChooseStrategy:
		return "Pick a strategy"
	default:
		return string(t)
	}
}

func difficultyLabel(d int) string {
	return strings.Repeat("●", d) + strings.Repeat("○", max(3-d, 0))
}
