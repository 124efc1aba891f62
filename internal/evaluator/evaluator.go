// Package evaluator scores a multi-select answer against a question's
// correct option set.
package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/abhisek/pandamj/internal/catalog"
)

// ErrQuestionNotFound is returned when the question id is not in the source.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionSource looks up catalog questions by id.
type QuestionSource interface {
	Question(id string) (catalog.Question, bool)
}

// Result is the outcome of evaluating one answer.
type Result struct {
	QuestionID        string
	IsCorrect         bool
	ExpectedOptionIDs []string
	SelectedOptionIDs []string
	MissingOptionIDs  []string
	ExtraOptionIDs    []string
}

// Evaluate compares the selected option ids with the question's correct set.
//
// Normalization rules:
// - Both sides are de-duplicated and sorted
// - Correct only on an exact set match; partial credit does not exist
// - Unknown option ids are reported as extra
// - An empty selection is allowed and is wrong
func Evaluate(src QuestionSource, questionID string, selected []string) (Result, error) {
	q, ok := src.Question(questionID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, questionID)
	}

	expected := normalize(q.CorrectOptionIDs)
	picked := normalize(selected)
	missing := lo.Without(expected, picked...)
	extra := lo.Without(picked, expected...)

	return Result{
		QuestionID:        questionID,
		IsCorrect:         len(missing) == 0 && len(extra) == 0,
		ExpectedOptionIDs: expected,
		SelectedOptionIDs: picked,
		MissingOptionIDs:  missing,
		ExtraOptionIDs:    extra,
	}, nil
}

func normalize(ids []string) []string {
	out := lo.Uniq(ids)
	slices.Sort(out)
	return out
}
