package drill

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/screens/summary"
	"github.com/abhisek/pandamj/internal/settings"
	"github.com/abhisek/pandamj/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps() screen.Deps {
	l := logrus.New()
	l.SetOutput(io.Discard)
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	return screen.Deps{
		Catalog:  catalog.Default(),
		Progress: progress.NewStore(store.NewMemoryRepo(), progress.WithLogger(l)),
		Settings: settings.Default(),
		Log:      l,
		Now:      func() time.Time { return now },
	}
}

// answerCorrectly selects every correct option of the current question.
func answerCorrectly(t *testing.T, s *DrillScreen) {
	t.Helper()
	q, ok := s.drill.Current()
	if !ok {
		t.Fatal("no current question")
	}
	for _, id := range q.CorrectOptionIDs {
		s.Update(keyPress(rune(strings.ToLower(id)[0])))
	}
}

func TestDrillScreen_Title(t *testing.T) {
	deps := testDeps()
	if got := NewExplain(deps).Title(); got != "Explain" {
		t.Errorf("Title = %q, want Explain", got)
	}
	stage, _ := deps.Catalog.Stage("stage-01")
	if got := NewChallenge(deps, stage).Title(); got != stage.Title {
		t.Errorf("Title = %q, want %q", got, stage.Title)
	}
}

func TestDrillScreen_SubmitRequiresSelection(t *testing.T) {
	deps := testDeps()
	s := NewExplain(deps)

	s.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering", s.phase)
	}
	if s.errMsg == "" {
		t.Error("expected a prompt to choose an option")
	}
	if n := len(deps.Progress.Load(context.Background()).AnswerHistory); n != 0 {
		t.Errorf("history has %d records, want 0", n)
	}
}

func TestDrillScreen_ExplainFeedbackThenNext(t *testing.T) {
	deps := testDeps()
	s := NewExplain(deps)

	answerCorrectly(t, s)
	s.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", s.phase)
	}
	if s.feedback == nil || !s.feedback.Result.IsCorrect {
		t.Errorf("feedback = %+v, want a correct result", s.feedback)
	}
	view := s.View(120, 40)
	if !strings.Contains(view, "Correct") {
		t.Error("feedback view should announce a correct answer")
	}
	if !strings.Contains(view, "Question 1 / 120") {
		t.Error("feedback view should keep the answered position")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.phase != phaseAnswering {
		t.Errorf("phase = %d, want answering", s.phase)
	}
	if got := s.Status(); !strings.HasPrefix(got, "Q 2/120") {
		t.Errorf("Status = %q, want Q 2/120 prefix", got)
	}
	if n := len(deps.Progress.Load(context.Background()).AnswerHistory); n != 1 {
		t.Errorf("history has %d records, want 1", n)
	}
}

func TestDrillScreen_SkipAndRestart(t *testing.T) {
	s := NewExplain(testDeps())

	s.Update(keyPress('s'))
	if got := s.Status(); !strings.HasPrefix(got, "Q 2/120") {
		t.Errorf("after skip Status = %q", got)
	}

	s.Update(keyPress('r'))
	if got := s.Status(); !strings.HasPrefix(got, "Q 1/120") {
		t.Errorf("after restart Status = %q", got)
	}
}

func TestDrillScreen_Jump(t *testing.T) {
	s := NewExplain(testDeps())

	s.Update(keyPress('g'))
	if !s.CapturingInput() {
		t.Fatal("expected the jump prompt to capture input")
	}
	for _, r := range "opening-005" {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))

	if s.CapturingInput() {
		t.Error("jump prompt should close after a valid id")
	}
	if got := s.Status(); !strings.HasPrefix(got, "Q 5/120") {
		t.Errorf("Status = %q, want Q 5/120 prefix", got)
	}
}

func TestDrillScreen_JumpCancel(t *testing.T) {
	s := NewExplain(testDeps())
	s.Update(keyPress('g'))
	s.Update(specialKey(tea.KeyEscape))
	if s.CapturingInput() {
		t.Error("Esc should close the jump prompt")
	}
}

func TestDrillScreen_ChallengeSettlesToSummary(t *testing.T) {
	deps := testDeps()
	stage, _ := deps.Catalog.Stage("stage-01")
	s := NewChallenge(deps, stage)

	var cmd tea.Cmd
	for range stage.QuestionIDs {
		answerCorrectly(t, s)
		s.Update(specialKey(tea.KeyEnter))
		_, cmd = s.Update(specialKey(tea.KeyEnter))
	}

	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}

	snap := deps.Progress.Load(context.Background())
	if snap.StageStars["stage-01"] != 3 {
		t.Errorf("stars = %d, want 3", snap.StageStars["stage-01"])
	}
}

func TestDrillScreen_ChallengeHidesExplanation(t *testing.T) {
	deps := testDeps()
	stage, _ := deps.Catalog.Stage("stage-01")
	s := NewChallenge(deps, stage)

	answerCorrectly(t, s)
	s.Update(specialKey(tea.KeyEnter))

	if strings.Contains(s.View(120, 40), "Pitfall") {
		t.Error("challenge feedback should not show the explanation")
	}
}

func TestDrillScreen_EmptyMistakes(t *testing.T) {
	s := NewMistakes(testDeps())
	if s.phase != phaseFinished {
		t.Fatalf("phase = %d, want finished", s.phase)
	}
	if !strings.Contains(s.View(100, 30), "Nothing to practise") {
		t.Error("expected empty mistake message")
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestDrillScreen_KeyHints(t *testing.T) {
	s := NewExplain(testDeps())
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints while answering")
	}
	s.Update(keyPress('g'))
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("jump hints = %d, want 2", len(hints))
	}
}
