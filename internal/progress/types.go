// Package progress owns the persisted progress snapshot and the pure
// statistics derived from its answer history.
package progress

import (
	"maps"
	"slices"
	"time"
)

const (
	// Key is the blob key of the progress snapshot.
	Key = "pandamj-progress-v1"

	// HistoryCap is the maximum number of answer records kept.
	HistoryCap = 500

	// MistakeCap is the maximum number of mistake question ids kept.
	MistakeCap = 200

	// FirstStageID is unlocked in every fresh snapshot.
	FirstStageID = "stage-01"
)

// Mode is the practice mode an answer was given in.
type Mode string

const (
	ModeExplain   Mode = "explain"
	ModeChallenge Mode = "challenge"
	ModeMistake   Mode = "mistake"
)

// AllModes returns every practice mode.
func AllModes() []Mode {
	return []Mode{ModeExplain, ModeChallenge, ModeMistake}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return slices.Contains(AllModes(), m)
}

// DisplayName returns a human-readable mode name.
func (m Mode) DisplayName() string {
	switch m {
	case ModeExplain:
		return "Explain"
	case ModeChallenge:
		return "Challenge"
	case ModeMistake:
		return "Mistakes"
	default:
		return string(m)
	}
}

// AnswerRecord is one submitted answer. Records are never mutated after creation.
type AnswerRecord struct {
	QuestionID        string    `json:"questionId"`
	SelectedOptionIDs []string  `json:"selectedOptionIds"`
	IsCorrect         bool      `json:"isCorrect"`
	ElapsedMs         int64     `json:"elapsedMs"`
	Mode              Mode      `json:"mode"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Snapshot is the persisted progress aggregate.
type Snapshot struct {
	AnswerHistory      []AnswerRecord   `json:"answerHistory"`      // newest first
	MistakeQuestionIDs []string         `json:"mistakeQuestionIds"` // newest first
	StageStars         map[string]int   `json:"stageStars"`
	StageBestTimeMs    map[string]int64 `json:"stageBestTimeMs"`
	CompletedStageIDs  []string         `json:"completedStageIds"`
	UnlockedStageIDs   []string         `json:"unlockedStageIds"`
}

// DefaultSnapshot returns the snapshot of a learner with no progress.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		AnswerHistory:      []AnswerRecord{},
		MistakeQuestionIDs: []string{},
		StageStars:         map[string]int{},
		StageBestTimeMs:    map[string]int64{},
		CompletedStageIDs:  []string{},
		UnlockedStageIDs:   []string{FirstStageID},
	}
}

// Clone returns a deep copy so callers never alias store state.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		AnswerHistory:      make([]AnswerRecord, len(s.AnswerHistory)),
		MistakeQuestionIDs: slices.Clone(s.MistakeQuestionIDs),
		StageStars:         maps.Clone(s.StageStars),
		StageBestTimeMs:    maps.Clone(s.StageBestTimeMs),
		CompletedStageIDs:  slices.Clone(s.CompletedStageIDs),
		UnlockedStageIDs:   slices.Clone(s.UnlockedStageIDs),
	}
	for i, r := range s.AnswerHistory {
		r.SelectedOptionIDs = slices.Clone(r.SelectedOptionIDs)
		out.AnswerHistory[i] = r
	}
	return out.normalized()
}

// normalized replaces nil collections with empty ones.
func (s Snapshot) normalized() Snapshot {
	if s.AnswerHistory == nil {
		s.AnswerHistory = []AnswerRecord{}
	}
	if s.MistakeQuestionIDs == nil {
		s.MistakeQuestionIDs = []string{}
	}
	if s.StageStars == nil {
		s.StageStars = map[string]int{}
	}
	if s.StageBestTimeMs == nil {
		s.StageBestTimeMs = map[string]int64{}
	}
	if s.CompletedStageIDs == nil {
		s.CompletedStageIDs = []string{}
	}
	if s.UnlockedStageIDs == nil {
		s.UnlockedStageIDs = []string{}
	}
	return s
}

// IsCompleted reports whether the stage has been cleared at least once.
func (s Snapshot) IsCompleted(stageID string) bool {
	return slices.Contains(s.CompletedStageIDs, stageID)
}

// HasMistake reports whether the question is in the mistake set.
func (s Snapshot) HasMistake(questionID string) bool {
	return slices.Contains(s.MistakeQuestionIDs, questionID)
}
