package router

import (
	"bytes"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pandamj/internal/screen"
)

type fakeScreen struct {
	title  string
	inits  int
	update int
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.update++
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return "view:" + s.title }
func (s *fakeScreen) Title() string        { return s.title }

// menuStack builds home > stages > drill.
func menuStack() (*Router, []*fakeScreen) {
	screens := []*fakeScreen{{title: ""}, {title: "Challenge"}, {title: "Void & Swap · Stage 1"}}
	r := New(screens[0])
	r.Push(screens[1])
	r.Push(screens[2])
	return r, screens
}

func TestPushRunsInit(t *testing.T) {
	r, screens := menuStack()

	assert.Equal(t, 3, r.Depth())
	assert.Same(t, screens[2], r.Active())
	assert.Equal(t, 1, screens[2].inits)
	assert.Equal(t, 0, screens[0].inits, "root Init belongs to the program")
}

func TestPopSendsResumed(t *testing.T) {
	r, screens := menuStack()

	cmd := r.Pop()
	require.NotNil(t, cmd)
	assert.IsType(t, screen.ResumedMsg{}, cmd())
	assert.Same(t, screens[1], r.Active())
}

func TestPopKeepsRoot(t *testing.T) {
	r := New(&fakeScreen{title: "home"})
	assert.Nil(t, r.Pop())
	assert.Nil(t, r.PopToRoot())
	assert.Equal(t, 1, r.Depth())
}

func TestPopToRoot(t *testing.T) {
	r, screens := menuStack()

	cmd := r.Update(PopToRootMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, screen.ResumedMsg{}, cmd())
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, screens[0], r.Active())
}

func TestReplaceKeepsDepth(t *testing.T) {
	r, _ := menuStack()
	settle := &fakeScreen{title: "Settlement"}

	r.Update(ReplaceScreenMsg{Screen: settle})

	assert.Equal(t, 3, r.Depth())
	assert.Same(t, settle, r.Active())
	assert.Equal(t, 1, settle.inits)
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, screens := menuStack()

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Equal(t, 1, screens[2].update)
	assert.Equal(t, 0, screens[1].update)
	assert.Equal(t, "view:Void & Swap · Stage 1", r.View(80, 24))
}

func TestBreadcrumbSkipsUntitled(t *testing.T) {
	r, _ := menuStack()
	assert.Equal(t, []string{"Challenge", "Void & Swap · Stage 1"}, r.Breadcrumb())
}

func TestWithLoggerTracesNavigation(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	r := New(&fakeScreen{title: "home"}, WithLogger(l))
	r.Push(&fakeScreen{title: "Rules"})

	assert.Contains(t, buf.String(), "op=push")
	assert.Contains(t, buf.String(), "screen=Rules")
}
