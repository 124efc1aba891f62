package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

const bannerText = "PANDA MJ"

// bannerMinWidth is the narrowest terminal that fits the tile banner.
const bannerMinWidth = 40

// RenderBanner returns the tile banner, or a spaced one-line fallback for
// narrow terminals.
func RenderBanner(width int) string {
	if width < bannerMinWidth {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(components.SpacedTitle(bannerText))
	}
	return components.TileBanner(bannerText, theme.SuitCharacters)
}
