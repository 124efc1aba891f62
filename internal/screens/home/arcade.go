package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

const titleText = "PANDA MJ"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the tile title, or a one-line fallback.
func renderTitle(cw int, compact bool) string {
	var title string
	if compact {
		title = lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(components.SpacedTitle(titleText))
	} else {
		title = components.TileBanner(titleText, theme.SuitCharacters)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title)
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st dashboard, cw int, compact bool) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	stageStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	mistakeStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	if compact {
		parts = []string{
			starStyle.Render(fmt.Sprintf("★%d", st.stars)),
			stageStyle.Render(fmt.Sprintf("▦%d/%d", st.unlocked, st.stages)),
			countText(fmt.Sprintf("✗%d", st.mistakes), st.mistakes, mistakeStyle, dimStyle),
			countText(fmt.Sprintf("◷%d", st.today), st.today, todayStyle, dimStyle),
		}
	} else {
		parts = []string{
			starStyle.Render(fmt.Sprintf("★ %d STARS", st.stars)),
			stageStyle.Render(fmt.Sprintf("▦ %d/%d STAGES", st.unlocked, st.stages)),
			countText(fmt.Sprintf("✗ %d MISTAKES", st.mistakes), st.mistakes, mistakeStyle, dimStyle),
			countText(fmt.Sprintf("◷ %d TODAY", st.today), st.today, todayStyle, dimStyle),
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "  "))
}

func countText(text string, n int, active, dim lipgloss.Style) string {
	if n == 0 {
		return dim.Render(text)
	}
	return active.Render(text)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(labels []string, selected int, cw int, disabled map[int]bool) string {
	buttons := make([]string, len(labels))
	for i, label := range labels {
		buttons[i] = components.ArcadeButton(label, i == selected, disabled[i], buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for terminals
// too short for bordered buttons.
func renderArcadeMenuCompact(labels []string, selected int, cw int, disabled map[int]bool) string {
	lines := make([]string, len(labels))
	for i, label := range labels {
		switch {
		case disabled[i]:
			lines[i] = theme.Locked.Render("   " + label)
		case i == selected:
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			lines[i] = theme.Unselected.Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderStorageNote warns that progress is not being saved.
func renderStorageNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Progress storage unavailable, answers are kept for this run only")
}
