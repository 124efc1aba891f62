package components

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pandamj/internal/catalog"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion(multi bool) catalog.Question {
	return catalog.Question{
		ID:          "q-1",
		MultiSelect: multi,
		Options: []catalog.Option{
			{ID: "A", Label: "1m"},
			{ID: "B", Label: "4m"},
			{ID: "C", Label: "7m"},
		},
		CorrectOptionIDs: []string{"A", "C"},
	}
}

func TestOptionList_SingleSelectReplaces(t *testing.T) {
	o := NewOptionList(testQuestion(false))
	o, _ = o.Update(keyPress('a'))
	o, _ = o.Update(keyPress('b'))

	if got := o.Selected(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("Selected() = %v, want [B]", got)
	}
	if o.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", o.Cursor)
	}
}

func TestOptionList_MultiSelectToggles(t *testing.T) {
	o := NewOptionList(testQuestion(true))
	o, _ = o.Update(keyPress('c'))
	o, _ = o.Update(keyPress('a'))
	o, _ = o.Update(keyPress('b'))
	o, _ = o.Update(keyPress('b'))

	if got := o.Selected(); !slices.Equal(got, []string{"A", "C"}) {
		t.Errorf("Selected() = %v, want [A C]", got)
	}
}

func TestOptionList_SpaceTogglesCursor(t *testing.T) {
	o := NewOptionList(testQuestion(false))
	o, _ = o.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	o, _ = o.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	if got := o.Selected(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("Selected() = %v, want [B]", got)
	}
	if !o.HasSelection() {
		t.Error("HasSelection() = false")
	}
}

func TestOptionList_RevealFreezes(t *testing.T) {
	o := NewOptionList(testQuestion(true))
	o.Toggle("B")
	o.Reveal([]string{"A", "C"})
	o, _ = o.Update(keyPress('a'))

	if got := o.Selected(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("Selected() after reveal = %v, want [B]", got)
	}
	if !o.Revealed() {
		t.Error("Revealed() = false")
	}
	if view := o.View(); !strings.Contains(view, "7m") {
		t.Errorf("view missing option label: %q", view)
	}
}

func TestStarRating(t *testing.T) {
	got := StarRating(2, 3)
	if strings.Count(got, "★") != 2 || strings.Count(got, "☆") != 1 {
		t.Errorf("StarRating(2, 3) = %q", got)
	}
	if got := StarRating(5, 3); strings.Count(got, "★") != 3 {
		t.Errorf("StarRating clamps to total, got %q", got)
	}
}

func TestRenderTileRows(t *testing.T) {
	tiles := []string{"1m", "2m", "3m", "4s", "5s"}
	if rows := strings.Count(RenderTileRows(tiles, 2), "\n") + 1; rows != 3 {
		t.Errorf("rows = %d, want 3", rows)
	}
	if !strings.Contains(RenderTiles(nil), "-") {
		t.Error("empty row should render a dash")
	}
}
