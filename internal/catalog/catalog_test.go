package catalog

import (
	"slices"
	"strings"
	"testing"
)

func TestDefault_QuestionCount(t *testing.T) {
	all := Default().Questions()
	if len(all) != 120 {
		t.Errorf("got %d questions, want 120", len(all))
	}
}

func TestQuestionsByChapter(t *testing.T) {
	tests := []struct {
		chapter ChapterID
		want    int
	}{
		{ChapterOpening, 24},
		{ChapterMidgame, 30},
		{ChapterMeld, 18},
		{ChapterDefense, 24},
		{ChapterListening, 24},
	}
	for _, tt := range tests {
		qs := Default().QuestionsByChapter(tt.chapter)
		if len(qs) != tt.want {
			t.Errorf("QuestionsByChapter(%q): got %d, want %d", tt.chapter, len(qs), tt.want)
		}
		if got := Default().Stats()[tt.chapter]; got != tt.want {
			t.Errorf("Stats()[%q] = %d, want %d", tt.chapter, got, tt.want)
		}
	}
}

func TestQuestion_Exists(t *testing.T) {
	q, ok := Default().Question("opening-001")
	if !ok {
		t.Fatal("opening-001 not found")
	}
	if q.Chapter != ChapterOpening {
		t.Errorf("got chapter %q, want %q", q.Chapter, ChapterOpening)
	}
	if q.Type != TypeVoidOrSwap {
		t.Errorf("got type %q, want %q", q.Type, TypeVoidOrSwap)
	}
	if !slices.Equal(q.CorrectOptionIDs, []string{"C"}) {
		t.Errorf("got correct %v, want [C]", q.CorrectOptionIDs)
	}
	if !strings.HasPrefix(q.Prompt, "Void & Swap #1: ") {
		t.Errorf("prompt %q missing chapter prefix", q.Prompt)
	}
	if len(q.ExplanationSteps) != 3 {
		t.Errorf("got %d explanation steps, want 3", len(q.ExplanationSteps))
	}
}

func TestQuestion_NotFound(t *testing.T) {
	if _, ok := Default().Question("nonexistent"); ok {
		t.Error("expected nonexistent question to be missing")
	}
}

func TestQuestion_DifficultyCycles(t *testing.T) {
	want := []int{1, 2, 3, 1, 2, 3}
	qs := Default().QuestionsByChapter(ChapterMidgame)
	for i, w := range want {
		if qs[i].Difficulty != w {
			t.Errorf("%s difficulty = %d, want %d", qs[i].ID, qs[i].Difficulty, w)
		}
	}
}

func TestQuestion_HandRotatesBySuit(t *testing.T) {
	first, _ := Default().Question("opening-001")
	second, _ := Default().Question("opening-005")
	if first.Hand[0] != "1m" {
		t.Errorf("opening-001 hand[0] = %q, want 1m", first.Hand[0])
	}
	// Same template, variant 4 shifts suits by one.
	if second.Hand[0] != "1s" {
		t.Errorf("opening-005 hand[0] = %q, want 1s", second.Hand[0])
	}
}

func TestQuestion_VoidDiscardTracksRotatedSuit(t *testing.T) {
	q, _ := Default().Question("opening-003")
	if !strings.Contains(q.Prompt, "bamboo") {
		t.Errorf("prompt %q should name bamboo as the void suit", q.Prompt)
	}
	opt, ok := q.Option("A")
	if !ok {
		t.Fatal("option A missing")
	}
	if opt.Label != "1s" {
		t.Errorf("option A = %q, want 1s", opt.Label)
	}
}

func TestQuestion_TileOptionsRotate(t *testing.T) {
	q, _ := Default().Question("midgame-005")
	if len(q.Discards) != 6 {
		t.Fatalf("got %d discards, want 6", len(q.Discards))
	}
	opt, _ := q.Option("A")
	if opt.Label != "9p" {
		t.Errorf("option A = %q, want 9p", opt.Label)
	}
}

func TestQuestion_MultiSelectTemplates(t *testing.T) {
	var multi []string
	for _, q := range Default().Questions() {
		if q.MultiSelect {
			multi = append(multi, q.ID)
		}
	}
	// one midgame and one listening template, six questions each
	if len(multi) != 12 {
		t.Errorf("got %d multi-select questions, want 12", len(multi))
	}
}

func TestStages_Partition(t *testing.T) {
	c := Default()
	stages := c.Stages()
	if len(stages) != 12 {
		t.Fatalf("got %d stages, want 12", len(stages))
	}

	var ids []string
	for i, s := range stages {
		if len(s.QuestionIDs) != StageSize {
			t.Errorf("%s has %d questions, want %d", s.ID, len(s.QuestionIDs), StageSize)
		}
		if c.StageIndex(s.ID) != i {
			t.Errorf("StageIndex(%q) = %d, want %d", s.ID, c.StageIndex(s.ID), i)
		}
		ids = append(ids, s.QuestionIDs...)
	}

	all := c.Questions()
	if len(ids) != len(all) {
		t.Fatalf("stages cover %d questions, want %d", len(ids), len(all))
	}
	for i, q := range all {
		if ids[i] != q.ID {
			t.Errorf("stage order[%d] = %q, want %q", i, ids[i], q.ID)
		}
	}
}

func TestStages_ChapterAndDifficulty(t *testing.T) {
	tests := []struct {
		id         string
		chapter    ChapterID
		difficulty int
		firstQ     string
	}{
		{"stage-01", ChapterOpening, 1, "opening-001"},
		{"stage-03", ChapterMidgame, 1, "opening-021"},
		{"stage-06", ChapterMeld, 2, "midgame-027"},
		{"stage-12", ChapterListening, 3, "listening-015"},
	}
	for _, tt := range tests {
		s, err := Default().Stage(tt.id)
		if err != nil {
			t.Fatalf("Stage(%q): %v", tt.id, err)
		}
		if s.Chapter != tt.chapter {
			t.Errorf("%s chapter = %q, want %q", tt.id, s.Chapter, tt.chapter)
		}
		if s.Difficulty != tt.difficulty {
			t.Errorf("%s difficulty = %d, want %d", tt.id, s.Difficulty, tt.difficulty)
		}
		if s.QuestionIDs[0] != tt.firstQ {
			t.Errorf("%s first question = %q, want %q", tt.id, s.QuestionIDs[0], tt.firstQ)
		}
	}
}

func TestStage_NotFound(t *testing.T) {
	if _, err := Default().Stage("stage-99"); err == nil {
		t.Fatal("expected error for nonexistent stage, got nil")
	}
	if got := Default().StageIndex("stage-99"); got != -1 {
		t.Errorf("StageIndex = %d, want -1", got)
	}
}

func TestStages_RecommendedTagsResolve(t *testing.T) {
	c := Default()
	for _, s := range c.Stages() {
		if len(s.RecommendedRuleTags) == 0 {
			t.Errorf("%s has no recommended rules", s.ID)
		}
		for _, tag := range s.RecommendedRuleTags {
			r, ok := c.Rule(tag)
			if !ok {
				t.Errorf("%s recommends unknown rule %q", s.ID, tag)
				continue
			}
			if r.Chapter != s.Chapter {
				t.Errorf("%s recommends %q from chapter %q", s.ID, tag, r.Chapter)
			}
		}
	}
}

func TestRules_Count(t *testing.T) {
	if got := len(Default().Rules()); got != 22 {
		t.Errorf("got %d rules, want 22", got)
	}
	if got := len(Default().RulesByChapter(ChapterMidgame)); got != 6 {
		t.Errorf("got %d midgame rules, want 6", got)
	}
}

func TestRules_RefsResolve(t *testing.T) {
	c := Default()
	for _, q := range c.Questions() {
		if len(q.RuleRefs) == 0 {
			t.Errorf("%s has no rule refs", q.ID)
		}
		for _, ref := range q.RuleRefs {
			if _, ok := c.Rule(ref); !ok {
				t.Errorf("%s references unknown rule %q", q.ID, ref)
			}
		}
	}
}

func TestRules_Examples(t *testing.T) {
	c := Default()
	for _, r := range c.Rules() {
		if len(r.ExampleQuestionIDs) == 0 || len(r.ExampleQuestionIDs) > 6 {
			t.Errorf("%s has %d examples, want 1-6", r.ID, len(r.ExampleQuestionIDs))
		}
		for _, qid := range r.ExampleQuestionIDs {
			q, ok := c.Question(qid)
			if !ok {
				t.Errorf("%s example %q does not exist", r.ID, qid)
				continue
			}
			if !slices.Contains(q.RuleRefs, r.ID) {
				t.Errorf("%s example %q does not cite the rule", r.ID, qid)
			}
		}
	}

	r, _ := c.Rule("defense-01")
	want := []string{"defense-001", "defense-004", "defense-005", "defense-008", "defense-009", "defense-012"}
	if !slices.Equal(r.ExampleQuestionIDs, want) {
		t.Errorf("defense-01 examples = %v, want %v", r.ExampleQuestionIDs, want)
	}
}

func TestValidate_DefaultPasses(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default catalog validation failed: %v", err)
	}
}

func TestValidate_DetectsBadCorrectOption(t *testing.T) {
	qs := []Question{{
		ID:               "q1",
		Chapter:          ChapterOpening,
		Difficulty:       1,
		Options:          []Option{{ID: "A"}, {ID: "B"}},
		CorrectOptionIDs: []string{"Z"},
	}}
	c := newCatalog(qs, []Stage{{ID: "stage-01", QuestionIDs: []string{"q1"}}}, nil)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for nonexistent correct option, got nil")
	}
	if !strings.Contains(err.Error(), `"Z"`) {
		t.Errorf("error should mention the option, got: %v", err)
	}
}

func TestValidate_DetectsUncoveredQuestion(t *testing.T) {
	qs := []Question{
		{ID: "q1", Chapter: ChapterOpening, Difficulty: 1, Options: []Option{{ID: "A"}}, CorrectOptionIDs: []string{"A"}},
		{ID: "q2", Chapter: ChapterOpening, Difficulty: 1, Options: []Option{{ID: "A"}}, CorrectOptionIDs: []string{"A"}},
	}
	c := newCatalog(qs, []Stage{{ID: "stage-01", QuestionIDs: []string{"q1"}}}, nil)
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for uncovered question, got nil")
	}
	if !strings.Contains(err.Error(), "not in any stage") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRotateTile(t *testing.T) {
	tests := []struct {
		tile   string
		offset int
		want   string
	}{
		{"1m", 0, "1m"},
		{"1m", 1, "1s"},
		{"1m", 2, "1p"},
		{"9p", 1, "9m"},
		{"E", 1, "E"},
		{"", 1, ""},
	}
	for _, tt := range tests {
		if got := rotateTile(tt.tile, tt.offset); got != tt.want {
			t.Errorf("rotateTile(%q, %d) = %q, want %q", tt.tile, tt.offset, got, tt.want)
		}
	}
}
