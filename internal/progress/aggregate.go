package progress

import (
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/pandamj/internal/catalog"
)

// dayLayout is the calendar-day key used for the "answered today" count.
const dayLayout = "2006-01-02"

// ChapterLookup resolves the chapter of a question id.
type ChapterLookup func(questionID string) (catalog.ChapterID, bool)

// Overview is the deduplicated summary of an answer history.
type Overview struct {
	TotalAnswered    int
	TotalCorrect     int
	Accuracy         float64
	TodayAnswerCount int
	StageProgress    map[catalog.ChapterID]int
}

// LatestByQuestion maps each question id to its most recent record.
// History is stored newest first, so the first record seen wins.
func LatestByQuestion(history []AnswerRecord) map[string]AnswerRecord {
	latest := make(map[string]AnswerRecord, len(history))
	for _, r := range history {
		if _, seen := latest[r.QuestionID]; !seen {
			latest[r.QuestionID] = r
		}
	}
	return latest
}

// AnsweredSet returns the ids of questions answered in any of modes,
// or in any mode when none are given.
func AnsweredSet(history []AnswerRecord, modes ...Mode) map[string]bool {
	set := make(map[string]bool)
	for _, r := range history {
		if len(modes) == 0 || lo.Contains(modes, r.Mode) {
			set[r.QuestionID] = true
		}
	}
	return set
}

// Summarize computes the merged overview across all modes. Records whose
// question is unknown to lookup count toward totals but not toward
// StageProgress.
func Summarize(history []AnswerRecord, lookup ChapterLookup, now time.Time) Overview {
	latest := LatestByQuestion(history)

	o := Overview{
		TotalAnswered:    len(latest),
		TotalCorrect:     lo.CountBy(lo.Values(latest), func(r AnswerRecord) bool { return r.IsCorrect }),
		TodayAnswerCount: countToday(history, now),
		StageProgress:    emptyStageProgress(),
	}
	if o.TotalAnswered > 0 {
		o.Accuracy = float64(o.TotalCorrect) / float64(o.TotalAnswered)
	}

	if lookup != nil {
		for qid := range latest {
			if ch, ok := lookup(qid); ok {
				o.StageProgress[ch]++
			}
		}
	}
	return o
}

// SummarizeByMode computes separate overviews for explain and challenge
// answers. Mistake-mode records are excluded.
func SummarizeByMode(history []AnswerRecord, lookup ChapterLookup, now time.Time) map[Mode]Overview {
	out := make(map[Mode]Overview, 2)
	for _, m := range []Mode{ModeExplain, ModeChallenge} {
		subset := lo.Filter(history, func(r AnswerRecord, _ int) bool { return r.Mode == m })
		out[m] = Summarize(subset, lookup, now)
	}
	return out
}

// countToday counts distinct questions with a record on now's calendar day,
// in now's location.
func countToday(history []AnswerRecord, now time.Time) int {
	today := now.Format(dayLayout)
	seen := make(map[string]bool)
	for _, r := range history {
		if r.CreatedAt.In(now.Location()).Format(dayLayout) == today {
			seen[r.QuestionID] = true
		}
	}
	return len(seen)
}

func emptyStageProgress() map[catalog.ChapterID]int {
	m := make(map[catalog.ChapterID]int, len(catalog.AllChapters()))
	for _, ch := range catalog.AllChapters() {
		m[ch] = 0
	}
	return m
}
