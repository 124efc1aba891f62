// Package router keeps the stack of screens the player has navigated through.
package router

import (
	tea "charm.land/bubbletea/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/pandamj/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the screen below the active one.
type PopScreenMsg struct{}

// PopToRootMsg unwinds the stack to the menu at the bottom.
type PopToRootMsg struct{}

// ReplaceScreenMsg swaps the active screen, e.g. drill to settlement.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router manages a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
	log   logrus.FieldLogger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger traces navigation at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Router whose bottom screen is root.
func New(root screen.Screen, opts ...Option) *Router {
	discard := logrus.New()
	discard.SetLevel(logrus.PanicLevel)

	r := &Router{
		stack: []screen.Screen{root},
		log:   discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push adds s on top of the stack and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	r.trace("push", s)
	return s.Init()
}

// Pop removes the active screen and sends screen.ResumedMsg to the one
// it uncovers. Popping the root is a no-op.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	r.trace("pop", r.Active())
	return resumed
}

// PopToRoot drops everything above the root screen.
func (r *Router) PopToRoot() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:1]
	r.trace("pop to root", r.Active())
	return resumed
}

// Replace swaps the active screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	r.trace("replace", s)
	return s.Init()
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Breadcrumb lists the titles from the root to the active screen,
// skipping screens without a title.
func (r *Router) Breadcrumb() []string {
	return lo.FilterMap(r.stack, func(s screen.Screen, _ int) (string, bool) {
		t := s.Title()
		return t, t != ""
	})
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen into width x height.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}

func (r *Router) trace(op string, s screen.Screen) {
	r.log.WithFields(logrus.Fields{
		"op":     op,
		"screen": s.Title(),
		"depth":  len(r.stack),
	}).Debug("Navigate")
}

func resumed() tea.Msg { return screen.ResumedMsg{} }
