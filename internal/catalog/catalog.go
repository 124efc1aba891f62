package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Catalog is the immutable question bank with its stages and rule tags.
type Catalog struct {
	questions []Question
	byID      map[string]int
	stages    []Stage
	stageIdx  map[string]int
	rules     []RuleTag
	ruleIdx   map[string]int
}

// def is the package-level catalog, built once at init.
var def *Catalog

func init() {
	def = build()
	if err := def.Validate(); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return def
}

// build generates every question from the chapter templates, chunks them
// into stages and derives rule examples.
func build() *Catalog {
	var questions []Question
	for _, plan := range chapterPlan {
		questions = append(questions, buildChapter(plan.chapter, plan.count, plan.templates)...)
	}

	rules := make([]RuleTag, len(ruleSeed))
	copy(rules, ruleSeed)
	return newCatalog(questions, buildStages(questions, rules), withExamples(rules, questions))
}

func newCatalog(questions []Question, stages []Stage, rules []RuleTag) *Catalog {
	c := &Catalog{
		questions: questions,
		byID:      make(map[string]int, len(questions)),
		stages:    stages,
		stageIdx:  make(map[string]int, len(stages)),
		rules:     rules,
		ruleIdx:   make(map[string]int, len(rules)),
	}
	for i, q := range questions {
		c.byID[q.ID] = i
	}
	for i, s := range stages {
		c.stageIdx[s.ID] = i
	}
	for i, r := range rules {
		c.ruleIdx[r.ID] = i
	}
	return c
}

func buildChapter(chapter ChapterID, count int, templates []template) []Question {
	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		t := templates[i%len(templates)]
		n := i + 1
		id := fmt.Sprintf("%s-%03d", chapter, n)
		options := t.optionsFor(i)
		correct := slices.Clone(t.correct)

		out = append(out, Question{
			ID:               id,
			Chapter:          chapter,
			Type:             t.typ,
			Difficulty:       i%3 + 1,
			Prompt:           fmt.Sprintf("%s #%d: %s", chapter.DisplayName(), n, t.promptFor(i)),
			Hand:             rotateTiles(t.hand, i),
			Discards:         rotateTiles(t.discards, i),
			Options:          options,
			CorrectOptionIDs: correct,
			MultiSelect:      t.multiSelect,
			RuleRefs:         slices.Clone(t.ruleRefs),
			ExplanationSteps: explanationSteps(id, t.ruleRefs, options, correct),
			Pitfalls:         []string{t.pitfall},
		})
	}
	return out
}

func explanationSteps(questionID string, ruleRefs []string, options []Option, correct []string) []ExplanationStep {
	rule := "Follow the chapter mnemonic instead of playing by feel."
	if len(ruleRefs) > 0 {
		if first, ok := findRule(ruleRefs[0]); ok {
			rule = first.Title + ". " + first.Mnemonic
			if len(ruleRefs) > 1 {
				if second, ok := findRule(ruleRefs[1]); ok {
					rule += "; combine with: " + second.Mnemonic
				}
			}
		}
	}

	answers := lo.FilterMap(options, func(o Option, _ int) (string, bool) {
		return o.Label, lo.Contains(correct, o.ID)
	})
	best := "none"
	if len(answers) > 0 {
		best = strings.Join(answers, ", ")
	}

	return []ExplanationStep{
		{
			ID:     questionID + "-step-1",
			Title:  "Read the structure",
			Detail: "Decide whether this is a hand to speed up or a hand to defend, then choose between keeping middle tiles, breaking edges or folding.",
		},
		{
			ID:     questionID + "-step-2",
			Title:  "Apply the mnemonic",
			Detail: rule,
		},
		{
			ID:     questionID + "-step-3",
			Title:  "Make the call",
			Detail: "Best choice: " + best + ". Take the efficient or low-risk decision first, hand value second.",
		},
	}
}

func findRule(id string) (RuleTag, bool) {
	return lo.Find(ruleSeed, func(r RuleTag) bool { return r.ID == id })
}

func buildStages(questions []Question, rules []RuleTag) []Stage {
	ids := lo.Map(questions, func(q Question, _ int) string { return q.ID })
	chunks := lo.Chunk(ids, StageSize)

	stages := make([]Stage, len(chunks))
	for i, qids := range chunks {
		chapter := ChapterListening
		if i < len(stageChapters) {
			chapter = stageChapters[i]
		}
		n := i + 1
		meta := chapter.Meta()
		stages[i] = Stage{
			ID:          fmt.Sprintf("stage-%02d", n),
			Chapter:     chapter,
			Title:       fmt.Sprintf("%s · Stage %d", meta.Name, n),
			Description: fmt.Sprintf("%d-question challenge. Focus: %s", len(qids), meta.Summary),
			QuestionIDs: qids,
			RecommendedRuleTags: lo.FilterMap(rules, func(r RuleTag, _ int) (string, bool) {
				return r.ID, r.Chapter == chapter
			}),
			Difficulty: i*3/len(chunks) + 1,
		}
	}
	return stages
}

// withExamples fills each rule's ExampleQuestionIDs with the first
// questions (in catalog order) that cite it.
func withExamples(rules []RuleTag, questions []Question) []RuleTag {
	examples := make(map[string][]string, len(rules))
	for _, q := range questions {
		for _, ref := range q.RuleRefs {
			if len(examples[ref]) >= maxExamplesPerRule {
				continue
			}
			examples[ref] = append(examples[ref], q.ID)
		}
	}
	for i := range rules {
		rules[i].ExampleQuestionIDs = examples[rules[i].ID]
	}
	return rules
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []Question {
	return slices.Clone(c.questions)
}

// Question returns the question with the given id.
func (c *Catalog) Question(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// QuestionsByChapter returns the chapter's questions in catalog order.
func (c *Catalog) QuestionsByChapter(chapter ChapterID) []Question {
	return lo.Filter(c.questions, func(q Question, _ int) bool { return q.Chapter == chapter })
}

// ChapterOf returns the chapter a question belongs to.
func (c *Catalog) ChapterOf(questionID string) (ChapterID, bool) {
	q, ok := c.Question(questionID)
	if !ok {
		return "", false
	}
	return q.Chapter, true
}

// Stages returns all stages in curriculum order.
func (c *Catalog) Stages() []Stage {
	return slices.Clone(c.stages)
}

// Stage returns the stage with the given id.
func (c *Catalog) Stage(id string) (Stage, error) {
	i, ok := c.stageIdx[id]
	if !ok {
		return Stage{}, fmt.Errorf("stage not found: %q", id)
	}
	return c.stages[i], nil
}

// StageIndex returns the curriculum position of a stage, or -1.
func (c *Catalog) StageIndex(id string) int {
	if i, ok := c.stageIdx[id]; ok {
		return i
	}
	return -1
}

// Rules returns all rule tags.
func (c *Catalog) Rules() []RuleTag {
	return slices.Clone(c.rules)
}

// Rule returns the rule tag with the given id.
func (c *Catalog) Rule(id string) (RuleTag, bool) {
	i, ok := c.ruleIdx[id]
	if !ok {
		return RuleTag{}, false
	}
	return c.rules[i], true
}

// RulesByChapter returns the chapter's rule tags.
func (c *Catalog) RulesByChapter(chapter ChapterID) []RuleTag {
	return lo.Filter(c.rules, func(r RuleTag, _ int) bool { return r.Chapter == chapter })
}

// Stats returns the number of questions per chapter.
func (c *Catalog) Stats() map[ChapterID]int {
	counts := make(map[ChapterID]int, len(AllChapters()))
	for _, ch := range AllChapters() {
		counts[ch] = 0
	}
	for _, q := range c.questions {
		counts[q.Chapter]++
	}
	return counts
}
