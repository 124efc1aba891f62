package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

// OptionList is a selector over a question's options. Single-select lists
// replace the choice on toggle; multi-select lists flip it.
type OptionList struct {
	Options     []catalog.Option
	MultiSelect bool
	Cursor      int

	chosen   map[string]bool
	revealed bool
	correct  map[string]bool
}

// NewOptionList creates an option list for q.
func NewOptionList(q catalog.Question) OptionList {
	return OptionList{
		Options:     q.Options,
		MultiSelect: q.MultiSelect,
		chosen:      make(map[string]bool),
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement, toggling by option letter and space.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.revealed {
		return o, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "space", " ":
		if o.Cursor < len(o.Options) {
			o.Toggle(o.Options[o.Cursor].ID)
		}
	default:
		for i, opt := range o.Options {
			if strings.EqualFold(key, opt.ID) {
				o.Cursor = i
				o.Toggle(opt.ID)
				break
			}
		}
	}
	return o, nil
}

// Toggle selects or deselects id.
func (o *OptionList) Toggle(id string) {
	if o.revealed {
		return
	}
	if o.chosen[id] {
		delete(o.chosen, id)
		return
	}
	if !o.MultiSelect {
		clear(o.chosen)
	}
	o.chosen[id] = true
}

// Selected returns the chosen option ids in display order.
func (o OptionList) Selected() []string {
	var ids []string
	for _, opt := range o.Options {
		if o.chosen[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Reveal freezes the list and marks the correct options.
func (o *OptionList) Reveal(correct []string) {
	o.revealed = true
	o.correct = make(map[string]bool, len(correct))
	for _, id := range correct {
		o.correct[id] = true
	}
}

// Revealed reports whether the answer has been shown.
func (o OptionList) Revealed() bool {
	return o.revealed
}

// View renders the option column.
func (o OptionList) View() string {
	mark := func(chosen bool) string {
		switch {
		case o.MultiSelect && chosen:
			return "[x]"
		case o.MultiSelect:
			return "[ ]"
		case chosen:
			return "(•)"
		default:
			return "( )"
		}
	}

	var lines []string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s. %s", prefix, mark(o.chosen[opt.ID]), opt.ID, opt.Label)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case o.revealed && o.correct[opt.ID]:
			style = theme.Correct
		case o.revealed && o.chosen[opt.ID]:
			style = theme.Incorrect
		case o.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Cursor:
			style = theme.Selected
		}
		lines = append(lines, style.Render(line))

		if o.revealed && opt.Note != "" && (o.correct[opt.ID] || o.chosen[opt.ID]) {
			lines = append(lines, theme.Hint.Render("      "+opt.Note))
		}
	}

	hint := "Press a letter or Space to choose"
	if o.MultiSelect {
		hint = "Select every correct option"
	}
	if !o.revealed {
		lines = append(lines, "", theme.Hint.Render(hint))
	}
	return strings.Join(lines, "\n")
}

// HasSelection reports whether at least one option is chosen.
func (o OptionList) HasSelection() bool {
	return slices.ContainsFunc(o.Options, func(opt catalog.Option) bool { return o.chosen[opt.ID] })
}
