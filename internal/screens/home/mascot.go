package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/theme"
)

// MascotVariant selects which panda art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // busy day at the table
	MascotAlert                     // mistakes piling up
)

const mascotIdle = ` ●     ●
( ◕ ᴥ ◕ )
 ╭─中─╮
 ╰────╯`

const mascotCelebrating = ` ●     ●
( ★ ᴥ ★ )
\╭─中─╮/
 ╰────╯`

const mascotAlert = ` ●     ●
( ◕ ᴥ ◕ ) !
 ╭─中─╮
 ╰────╯`

// RenderMascot returns the panda art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := mascotIdle
	fg := theme.Ivory

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
