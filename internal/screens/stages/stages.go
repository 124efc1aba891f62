// Package stages is the challenge stage picker.
package stages

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/progression"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/screens/drill"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/layout"
	"github.com/abhisek/pandamj/internal/ui/theme"
)

type rowKind int

const (
	rowChapterHeader rowKind = iota
	rowStage
)

type row struct {
	kind    rowKind
	chapter catalog.ChapterID
	stage   catalog.Stage
}

// detailLines is the height reserved below the list for the selected stage.
const detailLines = 4

// StagesScreen lists the stages by chapter with their stars and lock state.
type StagesScreen struct {
	deps         screen.Deps
	rows         []row
	cursor       int
	scrollOffset int
	snap         progress.Snapshot
	gate         progression.UnlockState
	message      string
}

var _ screen.Screen = (*StagesScreen)(nil)
var _ screen.KeyHintProvider = (*StagesScreen)(nil)
var _ screen.StatusProvider = (*StagesScreen)(nil)

// New creates a StagesScreen with the cursor on the first unplayed unlocked stage.
func New(deps screen.Deps) *StagesScreen {
	s := &StagesScreen{deps: deps}

	var last catalog.ChapterID
	for _, st := range deps.Catalog.Stages() {
		if st.Chapter != last {
			s.rows = append(s.rows, row{kind: rowChapterHeader, chapter: st.Chapter})
			last = st.Chapter
		}
		s.rows = append(s.rows, row{kind: rowStage, chapter: st.Chapter, stage: st})
	}

	s.reload()
	s.cursor = s.initialCursor()
	return s
}

func (s *StagesScreen) reload() {
	s.snap = s.deps.Progress.Load(context.Background())
	s.gate = progression.UnlockStages(s.snap, s.deps.Catalog.Stages())
}

// initialCursor picks the first unlocked stage without stars, falling back
// to the first stage row.
func (s *StagesScreen) initialCursor() int {
	first := -1
	for i, r := range s.rows {
		if r.kind != rowStage {
			continue
		}
		if first < 0 {
			first = i
		}
		if s.gate.IsUnlocked(r.stage.ID) && s.snap.StageStars[r.stage.ID] == 0 {
			return i
		}
	}
	return max(first, 0)
}

func (s *StagesScreen) Init() tea.Cmd {
	return nil
}

func (s *StagesScreen) Title() string {
	return "Challenge"
}

// Status shows how many stages are open.
func (s *StagesScreen) Status() string {
	return fmt.Sprintf("%d/%d unlocked", len(s.gate.UnlockedStageIDs), len(s.deps.Catalog.Stages()))
}

func (s *StagesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Chapter"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StagesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ResumedMsg:
		s.reload()
		return s, nil
	case tea.KeyMsg:
		s.message = ""
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.jumpChapter(1)
		case "shift+tab":
			s.jumpChapter(-1)
		case "enter":
			return s, s.play()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// moveCursor moves the cursor by delta, skipping chapter headers.
func (s *StagesScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowStage {
			s.cursor = next
			return
		}
	}
}

// jumpChapter moves to the first stage of the next or previous chapter.
func (s *StagesScreen) jumpChapter(dir int) {
	chapters := catalog.AllChapters()
	cur := s.rows[s.cursor].chapter
	idx := -1
	for i, ch := range chapters {
		if ch == cur {
			idx = i
		}
	}
	for i := idx + dir; i >= 0 && i < len(chapters); i += dir {
		for j, r := range s.rows {
			if r.kind == rowStage && r.chapter == chapters[i] {
				s.cursor = j
				return
			}
		}
	}
}

func (s *StagesScreen) selected() (catalog.Stage, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowStage {
		return catalog.Stage{}, false
	}
	return s.rows[s.cursor].stage, true
}

func (s *StagesScreen) play() tea.Cmd {
	st, ok := s.selected()
	if !ok {
		return nil
	}
	if !s.gate.IsUnlocked(st.ID) {
		s.message = "Locked. Earn at least one star on the previous stage first."
		return nil
	}
	d := drill.NewChallenge(s.deps, st)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: d}
	}
}

func (s *StagesScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return theme.Hint.Render("  No stages available.")
	}

	listHeight := max(height-detailLines-1, 3)
	s.adjustScroll(listHeight)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowChapterHeader:
			lines = append(lines, renderChapterHeader(r.chapter))
		case rowStage:
			lines = append(lines, s.renderStageRow(r.stage, i == s.cursor, width))
		}
	}

	return strings.Join(lines, "\n") + "\n\n" + s.renderDetail(width)
}

// adjustScroll keeps the cursor and its chapter header in view.
func (s *StagesScreen) adjustScroll(height int) {
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowChapterHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func renderChapterHeader(ch catalog.ChapterID) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		PaddingLeft(2).
		Render(strings.ToUpper(ch.DisplayName()))
}

func (s *StagesScreen) renderStageRow(st catalog.Stage, selected bool, width int) string {
	unlocked := s.gate.IsUnlocked(st.ID)
	stars := s.snap.StageStars[st.ID]

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	badge := theme.Locked.Render("locked")
	if unlocked {
		badge = components.StarRating(stars, 3)
	}

	best := ""
	if ms := s.snap.StageBestTimeMs[st.ID]; ms > 0 && unlocked {
		best = formatMs(ms)
	}

	nameWidth := max(width-30, 12)
	name := fmt.Sprintf("Stage %d", s.deps.Catalog.StageIndex(st.ID)+1)
	nameStyle := theme.Unselected
	switch {
	case selected:
		nameStyle = theme.Selected
	case !unlocked:
		nameStyle = theme.Locked
	}

	return fmt.Sprintf("  %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		badge,
		theme.Hint.Render(fmt.Sprintf("%6s", best)),
	)
}

func (s *StagesScreen) renderDetail(width int) string {
	st, ok := s.selected()
	if !ok {
		return ""
	}
	var rules []string
	for _, id := range st.RecommendedRuleTags {
		if r, ok := s.deps.Catalog.Rule(id); ok {
			rules = append(rules, r.Title)
		}
	}

	body := lipgloss.NewStyle().Width(max(width-4, 20)).PaddingLeft(2)
	lines := []string{
		theme.Selected.PaddingLeft(2).Render(st.Title),
		body.Foreground(theme.TextDim).Render(st.Description),
	}
	if len(rules) > 0 {
		lines = append(lines, body.Foreground(theme.TextDim).Render("Rules: "+strings.Join(rules, ", ")))
	}
	if s.message != "" {
		lines = append(lines, theme.Incorrect.PaddingLeft(2).Render(s.message))
	}
	return strings.Join(lines, "\n")
}

func formatMs(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
