package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/theme"
)

// RenderTile draws one tile on an ivory face.
func RenderTile(tile string) string {
	return theme.Tile.Foreground(theme.SuitInk(tile)).Render(tile)
}

// RenderTiles draws a row of tiles separated by a single space. An empty
// row renders as a dash.
func RenderTiles(tiles []string) string {
	if len(tiles) == 0 {
		return theme.Locked.Render("-")
	}
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = RenderTile(t)
	}
	return strings.Join(parts, " ")
}

// RenderTileRows wraps tiles into rows of at most perRow tiles.
func RenderTileRows(tiles []string, perRow int) string {
	if perRow <= 0 || len(tiles) <= perRow {
		return RenderTiles(tiles)
	}
	var rows []string
	for start := 0; start < len(tiles); start += perRow {
		end := min(start+perRow, len(tiles))
		rows = append(rows, RenderTiles(tiles[start:end]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// TileBanner spells text on bordered tiles, one letter per tile. Spaces
// become gaps.
func TileBanner(text string, fg color.Color) string {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Ivory).
		Foreground(fg).
		Bold(true).
		Padding(0, 1)

	var parts []string
	for _, r := range text {
		if r == ' ' {
			parts = append(parts, "  ")
			continue
		}
		parts = append(parts, tile.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// SpacedTitle renders text with a middle dot between letters, for narrow
// terminals that cannot fit TileBanner.
func SpacedTitle(text string) string {
	var letters []string
	for _, r := range text {
		if r != ' ' {
			letters = append(letters, string(r))
		}
	}
	return strings.Join(letters, " · ")
}
