package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type picked string

func menuFixture() Menu {
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{
			Label:    label,
			Disabled: disabled,
			Action:   func() tea.Cmd { return func() tea.Msg { return picked(label) } },
		}
	}
	return NewMenu([]MenuItem{
		item("EXPLAIN", false),
		item("CHALLENGE", false),
		item("MISTAKES", true),
		item("EXIT", false),
	})
}

func press(m Menu, r rune) (Menu, tea.Cmd) {
	return m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
}

func TestNewMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}, {Label: "B"}})
	assert.Equal(t, 1, m.Selected)

	m = NewMenu([]MenuItem{{Label: "A", Disabled: true}})
	assert.Equal(t, 0, m.Selected)
}

func TestMenu_MovesAndWraps(t *testing.T) {
	m := menuFixture()

	m, _ = press(m, 'j')
	assert.Equal(t, 1, m.Selected)
	m, _ = press(m, 'j')
	assert.Equal(t, 3, m.Selected, "disabled item is skipped")
	m, _ = press(m, 'j')
	assert.Equal(t, 0, m.Selected, "wraps to the top")
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 3, m.Selected, "wraps to the bottom")
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := menuFixture()
	m.Selected = 1

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, picked("CHALLENGE"), cmd())
}

func TestMenu_DigitJumps(t *testing.T) {
	m := menuFixture()

	m, cmd := press(m, '4')
	require.NotNil(t, cmd)
	assert.Equal(t, picked("EXIT"), cmd())
	assert.Equal(t, 3, m.Selected)

	m, cmd = press(m, '3')
	assert.Nil(t, cmd, "disabled items cannot be picked")
	assert.Equal(t, 3, m.Selected)

	_, cmd = press(m, '9')
	assert.Nil(t, cmd)
}

func TestMenu_Select(t *testing.T) {
	m := menuFixture()
	assert.True(t, m.Select(1))
	assert.False(t, m.Select(2))
	assert.False(t, m.Select(-1))
	assert.Equal(t, 1, m.Selected)
}
