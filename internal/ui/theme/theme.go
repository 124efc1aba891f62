// Package theme holds the felt-table palette and the shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Table and chrome.
var (
	Primary   = lipgloss.Color("#10B981") // jade
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1F17") // felt
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
	Ivory     = lipgloss.Color("#FEF3C7") // tile face

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Suit inks. Sichuan mahjong plays only the three number suits.
var (
	SuitCharacters = lipgloss.Color("#DC2626") // m, wan
	SuitBamboo     = lipgloss.Color("#15803D") // s, tiao
	SuitDots       = lipgloss.Color("#1D4ED8") // p, tong
)

// SuitInk returns the ink for a tile code such as "3m" or "7p".
// Anything else is drawn in the felt color.
func SuitInk(tile string) color.Color {
	if tile == "" {
		return BgDark
	}
	switch tile[len(tile)-1] {
	case 'm':
		return SuitCharacters
	case 's':
		return SuitBamboo
	case 'p':
		return SuitDots
	}
	return BgDark
}

var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Answer and selection states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Locked     = lipgloss.NewStyle().Foreground(TextDim)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Star       = lipgloss.NewStyle().Foreground(ArcadeYellow)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	// Tile is an ivory tile face; callers set the suit ink.
	Tile = lipgloss.NewStyle().
		Background(Ivory).
		Bold(true).
		Padding(0, 1)
)
