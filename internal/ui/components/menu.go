package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Disabled items are skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. The cursor wraps around and digit
// keys jump straight to an item. Rendering is left to the caller.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.step(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Select moves the cursor to i if that item exists and is enabled.
func (m *Menu) Select(i int) bool {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return false
	}
	m.Selected = i
	return true
}

// SelectedItem returns the highlighted item.
func (m Menu) SelectedItem() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// step returns the next enabled index from start in direction dir,
// wrapping around, or -1 when every item is disabled.
func (m Menu) step(start, dir int) int {
	n := len(m.Items)
	for k := 1; k <= n; k++ {
		i := ((start+dir*k)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if i := m.step(m.Selected, -1); i >= 0 {
			m.Selected = i
		}
	case "down", "j":
		if i := m.step(m.Selected, 1); i >= 0 {
			m.Selected = i
		}
	case "enter", "space":
		return m, m.activate()
	default:
		if n, err := strconv.Atoi(key); err == nil && m.Select(n-1) {
			return m, m.activate()
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	item, ok := m.SelectedItem()
	if !ok || item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}
