package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrClosed is returned by a memory repo after Close.
var ErrClosed = errors.New("store closed")

// Blob is a stored value with its last write time.
type Blob struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// BlobRepo is a keyed store of serialized documents.
type BlobRepo interface {
	// Get returns the blob for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (blob Blob, ok bool, err error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all blobs ordered by key.
	List(ctx context.Context) ([]Blob, error)
}

// MemoryRepo is an in-process BlobRepo used for tests and as the
// fallback when the database cannot be opened.
type MemoryRepo struct {
	mu     sync.RWMutex
	blobs  map[string]Blob
	now    func() time.Time
	closed bool
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		blobs: make(map[string]Blob),
		now:   time.Now,
	}
}

func (r *MemoryRepo) Get(_ context.Context, key string) (Blob, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return Blob{}, false, ErrClosed
	}
	b, ok := r.blobs[key]
	return b, ok, nil
}

func (r *MemoryRepo) Put(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.blobs[key] = Blob{Key: key, Value: value, UpdatedAt: r.now()}
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	delete(r.blobs, key)
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Blob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, ErrClosed
	}
	out := make([]Blob, 0, len(r.blobs))
	for _, b := range r.blobs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Close makes every later call fail with ErrClosed.
func (r *MemoryRepo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
