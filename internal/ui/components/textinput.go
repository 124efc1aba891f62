package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with PandaMJ styling.
type TextInput struct {
	Model    textinput.Model
	Prompt   string
	errorMsg string
}

// NewTextInput creates a new styled, focused text input.
func NewTextInput(prompt, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:  ti,
		Prompt: prompt,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt, the input and any error.
func (t TextInput) View() string {
	view := lipgloss.NewStyle().Foreground(theme.Accent).Render(t.Prompt) + " " + t.Model.View()
	if t.errorMsg != "" {
		view += "  " + theme.Incorrect.Render(t.errorMsg)
	}
	return view
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetError shows msg next to the input until the next Reset.
func (t *TextInput) SetError(msg string) {
	t.errorMsg = msg
}

// Reset clears the value and the error.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.errorMsg = ""
}
