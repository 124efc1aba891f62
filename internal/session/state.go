// Package session runs explain, challenge and mistake drills over the
// question catalog and records every answer through the progress store.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
)

var (
	// ErrNotChallenge is returned when settling a drill that has no stage.
	ErrNotChallenge = errors.New("drill is not a stage challenge")

	// ErrDrillFinished is returned when submitting past the last question.
	ErrDrillFinished = errors.New("drill finished")

	// ErrNotInDrill is returned when jumping to a question outside the plan.
	ErrNotInDrill = errors.New("question not in drill")
)

// Recorder persists drill outcomes. *progress.Store implements it.
type Recorder interface {
	RecordAnswer(ctx context.Context, rec progress.AnswerRecord) progress.Snapshot
	SaveStageResult(ctx context.Context, stageID string, stars int, elapsedMs int64) progress.Snapshot
	MarkUnlocked(ctx context.Context, ids []string) progress.Snapshot
}

// Drill is one run through a Plan.
type Drill struct {
	// RunID identifies this run in logs.
	RunID string

	plan  Plan
	cat   *catalog.Catalog
	rec   Recorder
	snap  progress.Snapshot
	index int
	tally Tally

	startedAt time.Time
	shownAt   time.Time

	clock func() time.Time
	log   logrus.FieldLogger
}

// Option configures a Drill.
type Option func(*Drill)

// WithClock overrides the clock used to stamp question display times.
func WithClock(now func() time.Time) Option {
	return func(d *Drill) {
		if now != nil {
			d.clock = now
		}
	}
}

// WithLogger sets the drill logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Drill) {
		if l != nil {
			d.log = l
		}
	}
}

// NewExplainDrill walks the whole catalog, resuming at the first question
// not yet answered in explain mode.
func NewExplainDrill(cat *catalog.Catalog, rec Recorder, snap progress.Snapshot, opts ...Option) *Drill {
	return newDrill(BuildExplainPlan(cat), cat, rec, snap, opts)
}

// NewChallengeDrill walks one stage, resuming at the first question not yet
// answered in challenge mode. A resumed run keeps the earlier challenge
// results for the stage.
func NewChallengeDrill(cat *catalog.Catalog, rec Recorder, stage catalog.Stage, snap progress.Snapshot, opts ...Option) *Drill {
	return newDrill(BuildChallengePlan(stage), cat, rec, snap, opts)
}

// NewMistakeDrill walks the mistake set from the top.
func NewMistakeDrill(cat *catalog.Catalog, rec Recorder, snap progress.Snapshot, opts ...Option) *Drill {
	return newDrill(BuildMistakePlan(cat, snap.MistakeQuestionIDs), cat, rec, snap, opts)
}

func newDrill(plan Plan, cat *catalog.Catalog, rec Recorder, snap progress.Snapshot, opts []Option) *Drill {
	start := resumeIndex(plan, snap.AnswerHistory)
	d := &Drill{
		RunID: uuid.NewString(),
		plan:  plan,
		cat:   cat,
		rec:   rec,
		snap:  snap.Clone(),
		index: start,
		tally: resumeTally(plan, snap.AnswerHistory, start),
		clock: time.Now,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}

	fields := logrus.Fields{"run_id": d.RunID, "mode": plan.Mode, "questions": plan.Len()}
	if plan.Stage != nil {
		fields["stage"] = plan.Stage.ID
	}
	d.log = d.log.WithFields(fields)

	d.startedAt = d.clock()
	d.shownAt = d.startedAt
	d.log.WithField("start", d.index).Debug("Drill started")
	return d
}

// Plan returns the drill plan.
func (d *Drill) Plan() Plan {
	return d.plan
}

// Mode returns the drill mode.
func (d *Drill) Mode() progress.Mode {
	return d.plan.Mode
}

// Stage returns the challenged stage, if any.
func (d *Drill) Stage() (catalog.Stage, bool) {
	if d.plan.Stage == nil {
		return catalog.Stage{}, false
	}
	return *d.plan.Stage, true
}

// Snapshot returns the latest progress snapshot seen by the drill.
func (d *Drill) Snapshot() progress.Snapshot {
	return d.snap.Clone()
}

// Tally returns the results of this run, including any carried over
// when a challenge resumed.
func (d *Drill) Tally() Tally {
	return d.tally
}
