// Package drill is the screen that runs explain, challenge and mistake drills.
package drill

import (
	"context"
	"errors"
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/router"
	"github.com/abhisek/pandamj/internal/screen"
	"github.com/abhisek/pandamj/internal/screens/summary"
	"github.com/abhisek/pandamj/internal/session"
	"github.com/abhisek/pandamj/internal/ui/components"
	"github.com/abhisek/pandamj/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota // Waiting for a selection
	phaseFeedback               // Showing the evaluated answer
	phaseFinished               // Every question submitted or skipped
)

// DrillScreen implements screen.Screen for an active drill.
type DrillScreen struct {
	deps     screen.Deps
	drill    *session.Drill
	options  components.OptionList
	phase    phase
	feedback *session.Feedback
	jump     components.TextInput
	jumping  bool
	errMsg   string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)
var _ screen.InputCapturer = (*DrillScreen)(nil)

// New wraps an existing drill.
func New(deps screen.Deps, d *session.Drill) *DrillScreen {
	s := &DrillScreen{deps: deps, drill: d}
	s.loadQuestion()
	return s
}

// NewExplain starts an explain drill over the whole catalog.
func NewExplain(deps screen.Deps) *DrillScreen {
	snap := deps.Progress.Load(context.Background())
	return New(deps, session.NewExplainDrill(deps.Catalog, deps.Progress, snap, drillOptions(deps)...))
}

// NewChallenge starts a challenge drill over stage.
func NewChallenge(deps screen.Deps, stage catalog.Stage) *DrillScreen {
	snap := deps.Progress.Load(context.Background())
	return New(deps, session.NewChallengeDrill(deps.Catalog, deps.Progress, stage, snap, drillOptions(deps)...))
}

// NewMistakes starts a drill over the mistake set.
func NewMistakes(deps screen.Deps) *DrillScreen {
	snap := deps.Progress.Load(context.Background())
	return New(deps, session.NewMistakeDrill(deps.Catalog, deps.Progress, snap, drillOptions(deps)...))
}

func drillOptions(deps screen.Deps) []session.Option {
	opts := []session.Option{session.WithLogger(deps.Logger())}
	if deps.Now != nil {
		opts = append(opts, session.WithClock(deps.Now))
	}
	return opts
}

func (s *DrillScreen) Init() tea.Cmd {
	return nil
}

func (s *DrillScreen) Title() string {
	if stage, ok := s.drill.Stage(); ok {
		return stage.Title
	}
	return s.drill.Mode().DisplayName()
}

// Status shows the position and the run's correct count.
func (s *DrillScreen) Status() string {
	pos, total := s.drill.Position()
	return fmt.Sprintf("Q %d/%d  ✓ %d", pos, total, s.drill.Tally().Correct())
}

// CapturingInput reports whether the jump prompt is open.
func (s *DrillScreen) CapturingInput() bool {
	return s.jumping
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.jumping:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.phase == phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case s.phase == phaseFinished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "R", Description: "Restart"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-F", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "S", Description: "Skip"},
		{Key: "G", Description: "Jump"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.jumping {
			var cmd tea.Cmd
			s.jump, cmd = s.jump.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.jumping {
		return s.handleJumpKey(kmsg)
	}

	switch s.phase {
	case phaseFeedback:
		switch kmsg.String() {
		case "enter", "space", "n":
			return s.advance()
		}
		return s, nil
	case phaseFinished:
		switch kmsg.String() {
		case "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			s.restart()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s.submit()
	case "s":
		s.drill.Skip()
		return s.advance()
	case "r":
		s.restart()
		return s, nil
	case "g":
		s.jumping = true
		s.jump = components.NewTextInput("Jump to:", "e.g. opening-004", 24)
		return s, s.jump.Init()
	}

	s.errMsg = ""
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(kmsg)
	return s, cmd
}

func (s *DrillScreen) handleJumpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.jumping = false
		return s, nil
	case "enter":
		if err := s.drill.Jump(s.jump.Value()); err != nil {
			s.jump.SetError("not in this drill")
			return s, nil
		}
		s.jumping = false
		s.loadQuestion()
		return s, nil
	}
	var cmd tea.Cmd
	s.jump, cmd = s.jump.Update(msg)
	return s, cmd
}

func (s *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	if !s.options.HasSelection() {
		s.errMsg = "Choose at least one option first."
		return s, nil
	}

	fb, err := s.drill.Submit(context.Background(), s.options.Selected(), s.deps.Clock())
	if err != nil {
		if errors.Is(err, session.ErrDrillFinished) {
			return s.finish()
		}
		s.deps.Logger().WithError(err).Error("Submit failed")
		s.errMsg = err.Error()
		return s, nil
	}

	s.feedback = &fb
	s.options.Reveal(fb.Result.ExpectedOptionIDs)
	s.phase = phaseFeedback
	s.errMsg = ""
	return s, nil
}

// advance shows the next question, or finishes the drill.
func (s *DrillScreen) advance() (screen.Screen, tea.Cmd) {
	if s.drill.Done() {
		return s.finish()
	}
	s.loadQuestion()
	return s, nil
}

func (s *DrillScreen) finish() (screen.Screen, tea.Cmd) {
	stage, ok := s.drill.Stage()
	if !ok {
		s.phase = phaseFinished
		s.feedback = nil
		return s, nil
	}

	sum, err := s.drill.Settle(context.Background(), s.deps.Catalog.Stages(), s.deps.Clock())
	if err != nil {
		s.deps.Logger().WithError(err).Error("Stage settlement failed")
		s.errMsg = err.Error()
		s.phase = phaseFinished
		return s, nil
	}

	deps := s.deps
	var next func() tea.Cmd
	if nextStage, ok := s.nextUnlockedStage(stage.ID); ok {
		next = func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: NewChallenge(deps, nextStage)}
			}
		}
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(stage, sum, next)}
	}
}

func (s *DrillScreen) restart() {
	s.drill.Restart()
	s.loadQuestion()
}

// loadQuestion resets the option list for the current question.
func (s *DrillScreen) loadQuestion() {
	s.feedback = nil
	s.errMsg = ""
	q, ok := s.drill.Current()
	if !ok {
		s.phase = phaseFinished
		return
	}
	s.options = components.NewOptionList(q)
	s.phase = phaseAnswering
}

// nextUnlockedStage returns the stage after stageID when it is unlocked.
func (s *DrillScreen) nextUnlockedStage(stageID string) (catalog.Stage, bool) {
	stages := s.deps.Catalog.Stages()
	i := s.deps.Catalog.StageIndex(stageID)
	if i < 0 || i+1 >= len(stages) {
		return catalog.Stage{}, false
	}
	next := stages[i+1]
	if !slices.Contains(s.drill.Snapshot().UnlockedStageIDs, next.ID) {
		return catalog.Stage{}, false
	}
	return next, true
}

// showExplanation reports whether feedback includes the worked explanation.
func (s *DrillScreen) showExplanation() bool {
	return s.drill.Mode() != progress.ModeChallenge
}
