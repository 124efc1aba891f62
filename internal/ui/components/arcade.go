package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/theme"
)

// ContentWidth is the width every section inside a CabinetFrame is drawn
// at, between 20 and 64 columns.
func ContentWidth(frameWidth int) int {
	return max(20, min(frameWidth-6, 64))
}

// CabinetFrame centers content inside a jade double border that fills
// width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeButton draws a menu button. The selected one is lit like an
// arcade cabinet key; disabled ones are greyed out.
func ArcadeButton(label string, selected, disabled bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case disabled:
		return style.Foreground(theme.TextDim).BorderForeground(theme.Border).Render(label)
	case selected:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	default:
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
}
