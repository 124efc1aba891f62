package progress

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/store"
)

// Store is the sole writer of the progress snapshot. Every mutation loads
// the latest persisted value, applies one change and writes the full
// snapshot back.
//
// When the backing repo fails, the store logs a warning and keeps serving
// the last good snapshot from memory for the rest of the session.
type Store struct {
	mu   sync.Mutex
	repo store.BlobRepo
	key  string
	log  logrus.FieldLogger

	degraded bool
	mem      Snapshot // last good snapshot; authoritative once degraded
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recovery warnings.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithKey overrides the blob key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithDegraded starts the store in memory-only mode, for when the
// backing database could not be opened at all.
func WithDegraded(degraded bool) Option {
	return func(s *Store) {
		s.degraded = degraded
	}
}

// NewStore creates a Store over repo.
func NewStore(repo store.BlobRepo, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		key:  Key,
		log:  logrus.StandardLogger(),
		mem:  DefaultSnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Degraded reports whether the store has fallen back to memory.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Load returns the current snapshot. It never fails: an absent or
// unreadable blob yields the default snapshot.
func (s *Store) Load(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Clone()
}

// Save replaces the persisted snapshot.
func (s *Store) Save(ctx context.Context, snap Snapshot) Snapshot {
	return s.mutate(ctx, func(cur *Snapshot) bool {
		*cur = snap.Clone()
		return true
	})
}

// Reset replaces the persisted snapshot with defaults.
func (s *Store) Reset(ctx context.Context) Snapshot {
	return s.Save(ctx, DefaultSnapshot())
}

// AppendAnswer prepends rec to the answer history, dropping the oldest
// records beyond HistoryCap.
func (s *Store) AppendAnswer(ctx context.Context, rec AnswerRecord) Snapshot {
	return s.mutate(ctx, func(cur *Snapshot) bool {
		appendAnswer(cur, rec)
		return true
	})
}

// AppendMistake adds questionID to the front of the mistake set.
// It is a no-op when the id is already present.
func (s *Store) AppendMistake(ctx context.Context, questionID string) Snapshot {
	return s.mutate(ctx, func(cur *Snapshot) bool {
		return appendMistake(cur, questionID)
	})
}

// ClearMistakes empties the mistake set.
func (s *Store) ClearMistakes(ctx context.Context) Snapshot {
	return s.mutate(ctx, func(cur *Snapshot) bool {
		cur.MistakeQuestionIDs = []string{}
		return true
	})
}

// Mistakes returns the mistake question ids, newest first.
func (s *Store) Mistakes(ctx context.Context) []string {
	return s.Load(ctx).MistakeQuestionIDs
}

// RecordAnswer appends rec and, when it is wrong, adds its question to
// the mistake set. Both changes land in one write.
func (s *Store) RecordAnswer(ctx context.Context, rec AnswerRecord) Snapshot {
	return s.mutate(ctx, func(cur *Snapshot) bool {
		appendAnswer(cur, rec)
		if !rec.IsCorrect {
			appendMistake(cur, rec.QuestionID)
		}
		return true
	})
}

// SaveStageResult keeps the best stars and fastest time for stageID and
// marks it completed when stars >= 1.
func (s *Store) SaveStageResult(ctx context.Context, stageID string, stars int, elapsedMs int64) Snapshot {
	stars = max(0, min(stars, 3))
	elapsedMs = max(0, elapsedMs)

	return s.mutate(ctx, func(cur *Snapshot) bool {
		cur.StageStars[stageID] = max(cur.StageStars[stageID], stars)

		// A stored time of 0 is treated as no time recorded.
		if prev, ok := cur.StageBestTimeMs[stageID]; ok && prev > 0 {
			cur.StageBestTimeMs[stageID] = min(prev, elapsedMs)
		} else {
			cur.StageBestTimeMs[stageID] = elapsedMs
		}

		if stars >= 1 && !slices.Contains(cur.CompletedStageIDs, stageID) {
			cur.CompletedStageIDs = append(cur.CompletedStageIDs, stageID)
		}
		return true
	})
}

// MarkUnlocked unions ids into the cached unlock set. The set never shrinks.
func (s *Store) MarkUnlocked(ctx context.Context, ids []string) Snapshot {
	return s.mutate(ctx, func(cur *Snapshot) bool {
		merged := lo.Uniq(append(slices.Clone(cur.UnlockedStageIDs), ids...))
		if len(merged) == len(cur.UnlockedStageIDs) {
			return false
		}
		cur.UnlockedStageIDs = merged
		return true
	})
}

func appendAnswer(cur *Snapshot, rec AnswerRecord) {
	rec.ElapsedMs = max(0, rec.ElapsedMs)
	rec.SelectedOptionIDs = slices.Clone(rec.SelectedOptionIDs)
	if rec.SelectedOptionIDs == nil {
		rec.SelectedOptionIDs = []string{}
	}
	history := append([]AnswerRecord{rec}, cur.AnswerHistory...)
	if len(history) > HistoryCap {
		history = history[:HistoryCap]
	}
	cur.AnswerHistory = history
}

func appendMistake(cur *Snapshot, questionID string) bool {
	if slices.Contains(cur.MistakeQuestionIDs, questionID) {
		return false
	}
	ids := append([]string{questionID}, cur.MistakeQuestionIDs...)
	if len(ids) > MistakeCap {
		ids = ids[:MistakeCap]
	}
	cur.MistakeQuestionIDs = ids
	return true
}

// mutate runs fn on the latest snapshot and persists it when fn reports a change.
func (s *Store) mutate(ctx context.Context, fn func(cur *Snapshot) bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.load(ctx)
	if fn(&cur) {
		s.persist(ctx, cur)
	}
	return cur.Clone()
}

// load reads the persisted snapshot. Callers must hold mu.
func (s *Store) load(ctx context.Context) Snapshot {
	if s.degraded {
		return s.mem.Clone()
	}

	blob, ok, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.degrade(err, s.mem)
		return s.mem.Clone()
	}

	snap := DefaultSnapshot()
	if ok {
		if snap, err = decode(blob.Value); err != nil {
			s.log.WithError(err).WithField("key", s.key).Warn("Progress snapshot is corrupt, using defaults")
			snap = DefaultSnapshot()
		}
	}
	s.mem = snap.Clone()
	return snap
}

// persist writes snap. Callers must hold mu.
func (s *Store) persist(ctx context.Context, snap Snapshot) {
	if s.degraded {
		s.mem = snap.Clone()
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		s.degrade(err, snap)
		return
	}
	if err := s.repo.Put(ctx, s.key, string(data)); err != nil {
		s.degrade(err, snap)
		return
	}
	s.mem = snap.Clone()
}

func (s *Store) degrade(err error, last Snapshot) {
	s.log.WithError(err).WithField("key", s.key).Warn("Progress storage unavailable, continuing in memory")
	s.degraded = true
	s.mem = last.Clone()
}

// decode parses a persisted snapshot, backfilling missing fields from
// defaults. The first stage is always unlocked.
func decode(raw string) (Snapshot, error) {
	snap := DefaultSnapshot()
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, err
	}
	snap = snap.normalized()
	if !slices.Contains(snap.UnlockedStageIDs, FirstStageID) {
		snap.UnlockedStageIDs = append([]string{FirstStageID}, snap.UnlockedStageIDs...)
	}
	return snap, nil
}
