package catalog

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func (c *Catalog) Validate() error {
	var errs []string

	seen := make(map[string]bool, len(c.questions))
	for _, q := range c.questions {
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true
		errs = append(errs, validateQuestion(q, c.ruleIdx)...)
	}

	// Stages must partition the catalog.
	covered := make(map[string]string, len(c.questions))
	stageIDs := make(map[string]bool, len(c.stages))
	for _, s := range c.stages {
		if stageIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate stage ID: %q", s.ID))
		}
		stageIDs[s.ID] = true
		if len(s.QuestionIDs) == 0 {
			errs = append(errs, fmt.Sprintf("stage %q has no questions", s.ID))
		}
		for _, qid := range s.QuestionIDs {
			if !seen[qid] {
				errs = append(errs, fmt.Sprintf("stage %q references nonexistent question %q", s.ID, qid))
				continue
			}
			if prev, dup := covered[qid]; dup {
				errs = append(errs, fmt.Sprintf("question %q appears in both %q and %q", qid, prev, s.ID))
			}
			covered[qid] = s.ID
		}
		for _, tag := range s.RecommendedRuleTags {
			if _, ok := c.ruleIdx[tag]; !ok {
				errs = append(errs, fmt.Sprintf("stage %q recommends nonexistent rule %q", s.ID, tag))
			}
		}
	}
	for _, q := range c.questions {
		if _, ok := covered[q.ID]; !ok {
			errs = append(errs, fmt.Sprintf("question %q is not in any stage", q.ID))
		}
	}

	for _, r := range c.rules {
		if !r.Chapter.Valid() {
			errs = append(errs, fmt.Sprintf("rule %q has unknown chapter %q", r.ID, r.Chapter))
		}
		if len(r.ExampleQuestionIDs) == 0 {
			errs = append(errs, fmt.Sprintf("rule %q has no example questions", r.ID))
		}
		if len(r.ExampleQuestionIDs) > maxExamplesPerRule {
			errs = append(errs, fmt.Sprintf("rule %q has %d examples, max %d", r.ID, len(r.ExampleQuestionIDs), maxExamplesPerRule))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(q Question, rules map[string]int) []string {
	var errs []string

	if !q.Chapter.Valid() {
		errs = append(errs, fmt.Sprintf("question %q has unknown chapter %q", q.ID, q.Chapter))
	}
	if q.Difficulty < 1 || q.Difficulty > 3 {
		errs = append(errs, fmt.Sprintf("question %q has difficulty %d outside 1-3", q.ID, q.Difficulty))
	}

	optionIDs := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if optionIDs[o.ID] {
			errs = append(errs, fmt.Sprintf("question %q has duplicate option %q", q.ID, o.ID))
		}
		optionIDs[o.ID] = true
	}
	if len(q.CorrectOptionIDs) == 0 {
		errs = append(errs, fmt.Sprintf("question %q has no correct option", q.ID))
	}
	for _, id := range q.CorrectOptionIDs {
		if !optionIDs[id] {
			errs = append(errs, fmt.Sprintf("question %q marks nonexistent option %q correct", q.ID, id))
		}
	}
	for _, ref := range q.RuleRefs {
		if _, ok := rules[ref]; !ok {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent rule %q", q.ID, ref))
		}
	}
	return errs
}
