// Package settings persists the learner's display preferences.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/store"
)

// Key is the blob key of the settings document.
const Key = "pandamj-settings-v1"

// ErrInvalidValue is returned for an unknown setting name or value.
var ErrInvalidValue = errors.New("invalid setting value")

// FontScale controls padding density in the terminal UI.
type FontScale string

const (
	FontSmall  FontScale = "sm"
	FontMedium FontScale = "md"
	FontLarge  FontScale = "lg"
)

// Handedness decides which side the option column is drawn on.
type Handedness string

const (
	HandLeft  Handedness = "left"
	HandRight Handedness = "right"
)

// Settings is the persisted preference document.
type Settings struct {
	FontScale    FontScale  `json:"fontScale"`
	SoundEnabled bool       `json:"soundEnabled"`
	Handedness   Handedness `json:"handedness"`
}

// Default returns the settings of a fresh install.
func Default() Settings {
	return Settings{
		FontScale:    FontMedium,
		SoundEnabled: true,
		Handedness:   HandRight,
	}
}

func (f FontScale) valid() bool {
	return f == FontSmall || f == FontMedium || f == FontLarge
}

func (h Handedness) valid() bool {
	return h == HandLeft || h == HandRight
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	if !s.FontScale.valid() {
		return fmt.Errorf("%w: fontScale %q", ErrInvalidValue, s.FontScale)
	}
	if !s.Handedness.valid() {
		return fmt.Errorf("%w: handedness %q", ErrInvalidValue, s.Handedness)
	}
	return nil
}

// Names lists the settable fields in display order.
func Names() []string {
	return []string{"font-scale", "sound", "handedness"}
}

// Get returns the string form of the named field.
func (s Settings) Get(name string) (string, error) {
	switch name {
	case "font-scale":
		return string(s.FontScale), nil
	case "sound":
		return strconv.FormatBool(s.SoundEnabled), nil
	case "handedness":
		return string(s.Handedness), nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", ErrInvalidValue, name)
	}
}

// Set parses value into the named field and returns the updated settings.
func (s Settings) Set(name, value string) (Settings, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch name {
	case "font-scale":
		f := FontScale(value)
		if !f.valid() {
			return s, fmt.Errorf("%w: font-scale must be sm, md or lg, got %q", ErrInvalidValue, value)
		}
		s.FontScale = f
	case "sound":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("%w: sound must be true or false, got %q", ErrInvalidValue, value)
		}
		s.SoundEnabled = b
	case "handedness":
		h := Handedness(value)
		if !h.valid() {
			return s, fmt.Errorf("%w: handedness must be left or right, got %q", ErrInvalidValue, value)
		}
		s.Handedness = h
	default:
		return s, fmt.Errorf("%w: unknown setting %q", ErrInvalidValue, name)
	}
	return s, nil
}

// Store reads and writes the settings blob.
type Store struct {
	repo store.BlobRepo
	log  logrus.FieldLogger
}

// NewStore creates a settings Store over repo.
func NewStore(repo store.BlobRepo, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{repo: repo, log: log}
}

// Load returns the persisted settings. Absent or unreadable blobs yield
// defaults, and each invalid field falls back to its default on its own.
func (s *Store) Load(ctx context.Context) Settings {
	blob, ok, err := s.repo.Get(ctx, Key)
	if err != nil {
		s.log.WithError(err).Warn("Settings storage unavailable, using defaults")
		return Default()
	}
	if !ok {
		return Default()
	}

	out := Default()
	if err := json.Unmarshal([]byte(blob.Value), &out); err != nil {
		s.log.WithError(err).Warn("Settings blob is corrupt, using defaults")
		return Default()
	}

	def := Default()
	if !out.FontScale.valid() {
		out.FontScale = def.FontScale
	}
	if !out.Handedness.valid() {
		out.Handedness = def.Handedness
	}
	return out
}

// Save validates and persists settings.
func (s *Store) Save(ctx context.Context, st Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.repo.Put(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
