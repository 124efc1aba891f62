// Package layout draws the frame shared by every screen: header, footer and
// the drill's two-panel split.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/abhisek/pandamj/internal/settings"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

// A hand of 14 tiles plus the option column needs at least this much room.
const (
	MinWidth  = 80
	MinHeight = 24
)

const crumbSeparator = " › "

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot fit a hand.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The table is too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the logo, the navigation trail and a right-aligned
// status such as "Q 3/12". The trail keeps its last crumbs when the bar
// is too narrow.
func RenderHeader(crumbs []string, status string, width int) string {
	logo := lipgloss.NewStyle().Foreground(theme.SuitCharacters).Bold(true).Render(" 中 ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("PandaMJ")
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	room := inner - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	trail := fitTrail(crumbs, room)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(trail)

	gap := max(inner-lipgloss.Width(logo)-lipgloss.Width(center)-lipgloss.Width(right), 2)
	leftGap := gap / 2
	content := logo + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", gap-leftGap) + right

	return bar().Width(width).Render(content)
}

// fitTrail joins crumbs, dropping the oldest ones until the trail fits.
func fitTrail(crumbs []string, room int) string {
	for i := range crumbs {
		trail := strings.Join(crumbs[i:], crumbSeparator)
		if i > 0 {
			trail = "…" + crumbSeparator + trail
		}
		if lipgloss.Width(trail) <= room || i == len(crumbs)-1 {
			return trail
		}
	}
	return ""
}

// RenderFooter draws the key hints of the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := lo.Map(hints, func(h KeyHint, _ int) string {
		return keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	})
	return bar().Width(width).Render("  " + strings.Join(parts, "   "))
}

func bar() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderFrame stacks header, content and footer into exactly height rows.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Padding maps the font scale to vertical and horizontal padding around
// tiles and options.
func Padding(scale settings.FontScale) (vertical, horizontal int) {
	switch scale {
	case settings.FontSmall:
		return 0, 1
	case settings.FontLarge:
		return 1, 4
	default:
		return 0, 2
	}
}

// SideBySide places the option column on the side of the dominant hand.
func SideBySide(options, table string, hand settings.Handedness) string {
	if hand == settings.HandLeft {
		return lipgloss.JoinHorizontal(lipgloss.Top, options, "  ", table)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, table, "  ", options)
}
