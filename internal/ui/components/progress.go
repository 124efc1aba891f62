package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/theme"
)

// ProgressBar draws "Label  ████░░░░  40%  4/10" for a done/total count.
type ProgressBar struct {
	Label      string
	LabelWidth int // pads labels so stacked bars line up; 0 disables
	Done       int
	Total      int
	Width      int // whole line, label and counts included
}

// Fraction returns Done/Total clamped to [0, 1]. An empty total is 0.
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return max(0, min(float64(p.Done)/float64(p.Total), 1))
}

func (p ProgressBar) View() string {
	var label string
	if p.Label != "" {
		label = p.Label + strings.Repeat(" ", max(p.LabelWidth-lipgloss.Width(p.Label), 0)) + "  "
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(label)
	}
	suffix := theme.Hint.Render(fmt.Sprintf("  %3d%%  %d/%d", int(p.Fraction()*100), p.Done, p.Total))

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), 4)
	filled := int(float64(barWidth) * p.Fraction())

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		suffix
}

// StarRating renders n filled stars out of total.
func StarRating(n, total int) string {
	n = max(0, min(n, total))
	return theme.Star.Render(strings.Repeat("★", n)) +
		theme.Locked.Render(strings.Repeat("☆", total-n))
}
