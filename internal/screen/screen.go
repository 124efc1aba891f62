package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/settings"
	"github.com/abhisek/pandamj/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for a short status shown on the
// right side of the header.
type StatusProvider interface {
	Status() string
}

// InputCapturer is implemented by screens that need Esc while a text
// prompt is open.
type InputCapturer interface {
	CapturingInput() bool
}

// ResumedMsg is delivered to a screen when it becomes active again after
// the screen above it was popped.
type ResumedMsg struct{}

// Deps are the shared dependencies handed to every screen.
type Deps struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	Settings settings.Settings
	Log      logrus.FieldLogger
	Now      func() time.Time
}

// Clock returns d.Now, or time.Now when unset.
func (d Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Logger returns d.Log, or the standard logger when unset.
func (d Deps) Logger() logrus.FieldLogger {
	if d.Log != nil {
		return d.Log
	}
	return logrus.StandardLogger()
}
