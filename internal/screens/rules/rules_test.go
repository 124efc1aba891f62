package rules

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newScreen() *RulesScreen {
	return New(screen.Deps{Catalog: catalog.Default()})
}

func TestRules_ShowsFirstChapter(t *testing.T) {
	s := newScreen()
	view := s.View(100, 60)

	if !strings.Contains(view, "Golden 3, silver 7") {
		t.Error("opening rules should be listed")
	}
	if strings.Contains(view, "1-4-7 cut the 1") {
		t.Error("midgame rules should not be listed on the opening tab")
	}
	if s.Status() != "1/5" {
		t.Errorf("Status = %q, want 1/5", s.Status())
	}
}

func TestRules_ChapterKeysWrap(t *testing.T) {
	s := newScreen()

	s.Update(specialKey(tea.KeyRight))
	if !strings.Contains(s.View(100, 60), "1-4-7 cut the 1") {
		t.Error("right should switch to the midgame chapter")
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if s.chapter != len(catalog.AllChapters())-1 {
		t.Errorf("chapter = %d, want wrap to the last", s.chapter)
	}
}

func TestRules_ScrollIsClamped(t *testing.T) {
	s := newScreen()
	s.View(100, 10)
	if s.maxOffset == 0 {
		t.Fatal("a short viewport should need scrolling")
	}

	for range s.maxOffset + 5 {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.scrollOffset != s.maxOffset {
		t.Errorf("scrollOffset = %d, want clamp at %d", s.scrollOffset, s.maxOffset)
	}

	s.Update(specialKey(tea.KeyRight))
	if s.scrollOffset != 0 {
		t.Error("changing chapter should reset the scroll")
	}
	s.Update(specialKey(tea.KeyUp))
	if s.scrollOffset != 0 {
		t.Error("scroll should not go negative")
	}
}

func TestRules_QuitPops(t *testing.T) {
	_, cmd := newScreen().Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
