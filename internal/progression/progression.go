// Package progression rates stages with stars and decides which stages
// of the linear curriculum are unlocked.
package progression

import (
	"slices"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
)

// Star thresholds. Each boundary is inclusive.
const (
	ThreeStarAccuracy = 0.9
	TwoStarAccuracy   = 0.7
	OneStarAccuracy   = 0.5
)

// CalcStageStars converts a stage accuracy in [0, 1] to a 0-3 star rating.
func CalcStageStars(accuracy float64) int {
	switch {
	case accuracy >= ThreeStarAccuracy:
		return 3
	case accuracy >= TwoStarAccuracy:
		return 2
	case accuracy >= OneStarAccuracy:
		return 1
	default:
		return 0
	}
}

// StageAccuracy returns correct/total, or 0 when total is 0.
func StageAccuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// UnlockState is the outcome of running the gate over a snapshot.
type UnlockState struct {
	UnlockedStageIDs  []string // curriculum order
	NextLockedStageID string   // empty when every stage is unlocked
	CompletionRate    float64
}

// UnlockStages recomputes the unlocked stages. The persisted unlock set
// seeds the result so stages never re-lock. The first stage is always
// unlocked; stage i unlocks when stage i-1 has at least one star or is
// recorded as completed.
func UnlockStages(snap progress.Snapshot, stages []catalog.Stage) UnlockState {
	if len(stages) == 0 {
		return UnlockState{UnlockedStageIDs: []string{}}
	}

	unlocked := make(map[string]bool, len(stages))
	for _, id := range snap.UnlockedStageIDs {
		unlocked[id] = true
	}
	unlocked[stages[0].ID] = true

	for i := 1; i < len(stages); i++ {
		prev := stages[i-1].ID
		if snap.StageStars[prev] >= 1 || slices.Contains(snap.CompletedStageIDs, prev) {
			unlocked[stages[i].ID] = true
		}
	}

	state := UnlockState{UnlockedStageIDs: make([]string, 0, len(stages))}
	for _, s := range stages {
		if unlocked[s.ID] {
			state.UnlockedStageIDs = append(state.UnlockedStageIDs, s.ID)
		} else if state.NextLockedStageID == "" {
			state.NextLockedStageID = s.ID
		}
	}
	state.CompletionRate = float64(len(state.UnlockedStageIDs)) / float64(len(stages))
	return state
}

// IsUnlocked reports whether stageID is in the unlocked set.
func (s UnlockState) IsUnlocked(stageID string) bool {
	return slices.Contains(s.UnlockedStageIDs, stageID)
}

// NewlyUnlocked returns ids unlocked in after but not in before, in curriculum order.
func NewlyUnlocked(before, after UnlockState) []string {
	var out []string
	for _, id := range after.UnlockedStageIDs {
		if !before.IsUnlocked(id) {
			out = append(out, id)
		}
	}
	return out
}
