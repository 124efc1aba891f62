package session

import (
	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
)

// Plan is the ordered list of questions a drill walks through.
type Plan struct {
	Mode progress.Mode

	// Stage is set for challenge drills only.
	Stage *catalog.Stage

	QuestionIDs []string
}

// Len returns the number of questions in the plan.
func (p Plan) Len() int {
	return len(p.QuestionIDs)
}

// IndexOf returns the position of questionID in the plan, or -1.
func (p Plan) IndexOf(questionID string) int {
	for i, id := range p.QuestionIDs {
		if id == questionID {
			return i
		}
	}
	return -1
}
