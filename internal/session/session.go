package session

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/evaluator"
	"github.com/abhisek/pandamj/internal/progress"
)

// Feedback is returned for each submitted answer.
type Feedback struct {
	Result   evaluator.Result
	Question catalog.Question
	Record   progress.AnswerRecord
}

// Current returns the question being shown. ok is false once the drill is done.
func (d *Drill) Current() (q catalog.Question, ok bool) {
	if d.Done() {
		return catalog.Question{}, false
	}
	return d.cat.Question(d.plan.QuestionIDs[d.index])
}

// Position returns the 1-based position of the current question and the
// plan length. A finished drill reports total/total.
func (d *Drill) Position() (pos, total int) {
	total = d.plan.Len()
	return min(d.index+1, total), total
}

// Done reports whether every question has been submitted or skipped.
func (d *Drill) Done() bool {
	return d.index >= d.plan.Len()
}

// Jump moves to questionID.
func (d *Drill) Jump(questionID string) error {
	i := d.plan.IndexOf(questionID)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotInDrill, questionID)
	}
	d.moveTo(i)
	return nil
}

// Skip moves past the current question without answering it.
func (d *Drill) Skip() {
	if d.Done() {
		return
	}
	d.log.WithField("question", d.plan.QuestionIDs[d.index]).Debug("Question skipped")
	d.moveTo(d.index + 1)
}

// Restart returns to the first question and clears the run's results.
func (d *Drill) Restart() {
	d.tally = newTally()
	d.moveTo(0)
	d.startedAt = d.shownAt
	d.log.Debug("Drill restarted")
}

// Submit evaluates selected against the current question, records the
// answer and advances to the next question.
func (d *Drill) Submit(ctx context.Context, selected []string, now time.Time) (Feedback, error) {
	if d.Done() {
		return Feedback{}, ErrDrillFinished
	}

	qid := d.plan.QuestionIDs[d.index]
	q, ok := d.cat.Question(qid)
	if !ok {
		return Feedback{}, fmt.Errorf("%w: %q", evaluator.ErrQuestionNotFound, qid)
	}

	res, err := evaluator.Evaluate(d.cat, qid, selected)
	if err != nil {
		return Feedback{}, fmt.Errorf("evaluate answer: %w", err)
	}

	rec := progress.AnswerRecord{
		QuestionID:        qid,
		SelectedOptionIDs: res.SelectedOptionIDs,
		IsCorrect:         res.IsCorrect,
		ElapsedMs:         max(0, now.Sub(d.shownAt).Milliseconds()),
		Mode:              d.plan.Mode,
		CreatedAt:         now,
	}
	d.snap = d.rec.RecordAnswer(ctx, rec)
	d.tally.Record(qid, res.IsCorrect)

	d.log.WithFields(logrus.Fields{
		"question": qid,
		"correct":  res.IsCorrect,
		"elapsed":  rec.ElapsedMs,
	}).Debug("Answer recorded")

	d.index++
	d.shownAt = now
	return Feedback{Result: res, Question: q, Record: rec}, nil
}

func (d *Drill) moveTo(i int) {
	d.index = max(0, min(i, d.plan.Len()))
	d.shownAt = d.clock()
}
