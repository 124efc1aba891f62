package session

import "github.com/samber/lo"

// Tally tracks the latest result of each question answered during one run.
// Re-answering a question replaces its earlier result.
type Tally struct {
	results map[string]bool
}

func newTally() Tally {
	return Tally{results: make(map[string]bool)}
}

// Record stores the result for questionID.
func (t *Tally) Record(questionID string, correct bool) {
	t.results[questionID] = correct
}

// Answered returns the number of distinct questions answered.
func (t Tally) Answered() int {
	return len(t.results)
}

// Correct returns the number of questions whose latest answer is correct.
func (t Tally) Correct() int {
	return lo.CountBy(lo.Values(t.results), func(ok bool) bool { return ok })
}

// Result reports the latest result for questionID and whether it was answered.
func (t Tally) Result(questionID string) (correct, answered bool) {
	correct, answered = t.results[questionID]
	return correct, answered
}
