package evaluator

import (
	"errors"
	"slices"
	"testing"

	"github.com/abhisek/pandamj/internal/catalog"
)

type mockSource map[string]catalog.Question

func (m mockSource) Question(id string) (catalog.Question, bool) {
	q, ok := m[id]
	return q, ok
}

func options(ids ...string) []catalog.Option {
	out := make([]catalog.Option, len(ids))
	for i, id := range ids {
		out[i] = catalog.Option{ID: id, Label: id}
	}
	return out
}

var src = mockSource{
	"single": {ID: "single", Options: options("A", "B", "C", "D"), CorrectOptionIDs: []string{"C"}},
	"multi":  {ID: "multi", Options: options("A", "B", "C", "D"), CorrectOptionIDs: []string{"C", "A"}, MultiSelect: true},
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		questionID  string
		selected    []string
		wantCorrect bool
		wantMissing []string
		wantExtra   []string
	}{
		{"exact single", "single", []string{"C"}, true, nil, nil},
		{"wrong single", "single", []string{"A"}, false, []string{"C"}, []string{"A"}},
		{"empty selection", "single", nil, false, []string{"C"}, nil},
		{"duplicates collapse", "single", []string{"C", "C"}, true, nil, nil},
		{"multi any order", "multi", []string{"C", "A"}, true, nil, nil},
		{"multi subset", "multi", []string{"A"}, false, []string{"C"}, nil},
		{"multi superset", "multi", []string{"A", "B", "C"}, false, nil, []string{"B"}},
		{"unknown option is extra", "single", []string{"C", "Z"}, false, nil, []string{"Z"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Evaluate(src, tc.questionID, tc.selected)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.IsCorrect != tc.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", r.IsCorrect, tc.wantCorrect)
			}
			if !slices.Equal(r.MissingOptionIDs, tc.wantMissing) {
				t.Errorf("Missing = %v, want %v", r.MissingOptionIDs, tc.wantMissing)
			}
			if !slices.Equal(r.ExtraOptionIDs, tc.wantExtra) {
				t.Errorf("Extra = %v, want %v", r.ExtraOptionIDs, tc.wantExtra)
			}
			if r.QuestionID != tc.questionID {
				t.Errorf("QuestionID = %q, want %q", r.QuestionID, tc.questionID)
			}
		})
	}
}

func TestEvaluate_Normalizes(t *testing.T) {
	r, err := Evaluate(src, "multi", []string{"D", "B", "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(r.ExpectedOptionIDs, []string{"A", "C"}) {
		t.Errorf("Expected = %v, want [A C]", r.ExpectedOptionIDs)
	}
	if !slices.Equal(r.SelectedOptionIDs, []string{"B", "D"}) {
		t.Errorf("Selected = %v, want [B D]", r.SelectedOptionIDs)
	}
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	selected := []string{"C", "A", "A"}
	if _, err := Evaluate(src, "multi", selected); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(selected, []string{"C", "A", "A"}) {
		t.Errorf("input mutated: %v", selected)
	}
}

func TestEvaluate_QuestionNotFound(t *testing.T) {
	_, err := Evaluate(src, "nonexistent", []string{"A"})
	if err == nil {
		t.Fatal("expected error for nonexistent question, got nil")
	}
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("error = %v, want ErrQuestionNotFound", err)
	}
}

func TestEvaluate_DefaultCatalog(t *testing.T) {
	r, err := Evaluate(catalog.Default(), "opening-001", []string{"C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsCorrect {
		t.Error("opening-001 with C should be correct")
	}

	r, err = Evaluate(catalog.Default(), "opening-001", []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsCorrect {
		t.Error("opening-001 with A should be wrong")
	}
	if !slices.Contains(r.MissingOptionIDs, "C") || !slices.Contains(r.ExtraOptionIDs, "A") {
		t.Errorf("got missing %v extra %v", r.MissingOptionIDs, r.ExtraOptionIDs)
	}
}
