package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progression"
)

// StageSummary holds the data displayed after settling a stage challenge.
type StageSummary struct {
	StageID           string
	Stars             int
	Accuracy          float64
	Correct           int
	Total             int
	ElapsedMs         int64
	BestTimeMs        int64
	NewlyUnlocked     []string
	NextLockedStageID string
}

// Settle scores the challenge run against the full stage, persists the
// stage result and refreshes the unlocked stages. Questions that were
// skipped or never reached count as wrong.
func (d *Drill) Settle(ctx context.Context, stages []catalog.Stage, now time.Time) (StageSummary, error) {
	stage, ok := d.Stage()
	if !ok {
		return StageSummary{}, ErrNotChallenge
	}

	total := d.plan.Len()
	correct := d.tally.Correct()
	accuracy := progression.StageAccuracy(correct, total)
	stars := progression.CalcStageStars(accuracy)
	elapsed := max(0, now.Sub(d.startedAt).Milliseconds())

	before := progression.UnlockStages(d.snap, stages)
	snap := d.rec.SaveStageResult(ctx, stage.ID, stars, elapsed)
	after := progression.UnlockStages(snap, stages)
	d.snap = d.rec.MarkUnlocked(ctx, after.UnlockedStageIDs)

	sum := StageSummary{
		StageID:           stage.ID,
		Stars:             stars,
		Accuracy:          accuracy,
		Correct:           correct,
		Total:             total,
		ElapsedMs:         elapsed,
		BestTimeMs:        d.snap.StageBestTimeMs[stage.ID],
		NewlyUnlocked:     progression.NewlyUnlocked(before, after),
		NextLockedStageID: after.NextLockedStageID,
	}

	d.log.WithFields(logrus.Fields{
		"stars":    sum.Stars,
		"correct":  sum.Correct,
		"elapsed":  sum.ElapsedMs,
		"unlocked": sum.NewlyUnlocked,
	}).Info("Stage settled")
	return sum, nil
}
