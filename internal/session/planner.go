package session

import (
	"github.com/samber/lo"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
)

// BuildExplainPlan walks the whole catalog in curriculum order.
func BuildExplainPlan(cat *catalog.Catalog) Plan {
	return Plan{
		Mode:        progress.ModeExplain,
		QuestionIDs: lo.Map(cat.Questions(), func(q catalog.Question, _ int) string { return q.ID }),
	}
}

// BuildChallengePlan walks the questions of one stage.
func BuildChallengePlan(stage catalog.Stage) Plan {
	return Plan{
		Mode:        progress.ModeChallenge,
		Stage:       &stage,
		QuestionIDs: append([]string(nil), stage.QuestionIDs...),
	}
}

// BuildMistakePlan walks the mistake set, newest first. Ids that no longer
// resolve in the catalog are dropped.
func BuildMistakePlan(cat *catalog.Catalog, mistakes []string) Plan {
	return Plan{
		Mode: progress.ModeMistake,
		QuestionIDs: lo.Filter(mistakes, func(id string, _ int) bool {
			_, ok := cat.Question(id)
			return ok
		}),
	}
}

// resumeIndex returns the first question of plan not yet answered in the
// plan's mode, or 0 when every question has been answered. Mistake plans
// always start from the top.
func resumeIndex(plan Plan, history []progress.AnswerRecord) int {
	if plan.Mode == progress.ModeMistake {
		return 0
	}
	answered := progress.AnsweredSet(history, plan.Mode)
	for i, id := range plan.QuestionIDs {
		if !answered[id] {
			return i
		}
	}
	return 0
}

// resumeTally carries the latest challenge-mode results for the stage's
// questions into a resumed run, so settling scores the whole stage and
// not only the questions answered since the resume. A run starting at
// the top begins empty.
func resumeTally(plan Plan, history []progress.AnswerRecord, start int) Tally {
	t := newTally()
	if plan.Mode != progress.ModeChallenge || start == 0 {
		return t
	}
	latest := progress.LatestByQuestion(lo.Filter(history, func(r progress.AnswerRecord, _ int) bool {
		return r.Mode == progress.ModeChallenge
	}))
	for _, id := range plan.QuestionIDs {
		if r, ok := latest[id]; ok {
			t.Record(id, r.IsCorrect)
		}
	}
	return t
}
