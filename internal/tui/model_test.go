package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"termfolio/internal/content"
	"termfolio/internal/session"
	"termfolio/internal/tui/render"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModel struct {
	*Model
	hook   *logtest.Hook
	copied []string
}

func newTestModel(t *testing.T, animate bool) *testModel {
	t.Helper()
	doc, err := content.Default()
	require.NoError(t, err)
	l, hook := logtest.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	tm := &testModel{hook: hook}
	tm.Model = New(Options{
		Session: session.New(session.Options{Content: doc}),
		Theme:   render.PlainTheme(),
		Animate: animate,
		Clock:   func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) },
		Clipboard: func(s string) error {
			tm.copied = append(tm.copied, s)
			return nil
		},
		Logger: logrus.NewEntry(l),
	})
	tm.resize(100, 40)
	tm.Init()
	return tm
}

func (tm *testModel) typeAndSubmit(text string) {
	tm.input.SetValue(text)
	tm.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func (tm *testModel) key(k tea.KeyType) {
	tm.Update(tea.KeyMsg{Type: k})
}

func (tm *testModel) finishReveal(id int) {
	for i := 0; i < 1000; i++ {
		if _, ok := tm.reveals[id]; !ok {
			return
		}
		tm.Update(revealTickMsg{id: id})
	}
}

func TestIntroRevealsLineByLine(t *testing.T) {
	tm := newTestModel(t, true)
	intro := tm.session.Transcript()[0]
	require.Contains(t, tm.reveals, intro.ID)
	assert.Equal(t, 0, tm.visible(intro))

	tm.Update(revealTickMsg{id: intro.ID})
	assert.Equal(t, 1, tm.visible(intro))
	assert.Contains(t, tm.viewport.View(), "Hello")
	assert.NotContains(t, tm.viewport.View(), "To see a list")

	tm.finishReveal(intro.ID)
	assert.NotContains(t, tm.reveals, intro.ID)
	assert.Equal(t, intro.Items(), tm.visible(intro))
	assert.Contains(t, tm.viewport.View(), "To see a list")
}

func TestStaleRevealTickAfterClearIsDropped(t *testing.T) {
	tm := newTestModel(t, true)
	tm.finishReveal(tm.session.Transcript()[0].ID)

	tm.typeAndSubmit("about")
	about := tm.session.Transcript()[2]
	require.Contains(t, tm.reveals, about.ID)
	tm.Update(revealTickMsg{id: about.ID})

	tm.typeAndSubmit("clear")
	tr := tm.session.Transcript()
	require.Len(t, tr, 1)
	intro := tr[0]
	assert.NotContains(t, tm.reveals, about.ID)
	require.Contains(t, tm.reveals, intro.ID)

	tm.hook.Reset()
	tm.Update(revealTickMsg{id: about.ID})
	assert.Equal(t, 0, tm.visible(intro), "stale tick must not advance the new intro")
	require.NotNil(t, tm.hook.LastEntry())
	assert.Equal(t, "dropped stale reveal tick", tm.hook.LastEntry().Message)
}

func TestHistoryKeys(t *testing.T) {
	tm := newTestModel(t, false)
	for _, c := range []string{"about", "stack", "help"} {
		tm.typeAndSubmit(c)
	}
	tm.key(tea.KeyUp)
	assert.Equal(t, "help", tm.input.Value())
	tm.key(tea.KeyUp)
	tm.key(tea.KeyUp)
	tm.key(tea.KeyUp)
	assert.Equal(t, "about", tm.input.Value())
	tm.key(tea.KeyDown)
	assert.Equal(t, "stack", tm.input.Value())
	tm.key(tea.KeyDown)
	tm.key(tea.KeyDown)
	assert.Equal(t, "", tm.input.Value())
	assert.Equal(t, -1, tm.session.Cursor())
}

func TestTypingUpdatesSessionInput(t *testing.T) {
	tm := newTestModel(t, false)
	tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	assert.Equal(t, "ab", tm.session.Input())
	tm.key(tea.KeyTab)
	assert.Equal(t, "about", tm.input.Value())
	assert.Equal(t, "about", tm.session.Input())
}

func TestReloadRestartsSession(t *testing.T) {
	tm := newTestModel(t, false)
	tm.typeAndSubmit("about")
	oldID := tm.SessionID()
	tm.typeAndSubmit("reload")
	assert.Contains(t, tm.viewport.View(), "System rebooting...")

	tm.Update(reloadMsg{sessionID: "someone-else"})
	assert.Equal(t, oldID, tm.SessionID(), "reload for another session is ignored")

	tm.Update(reloadMsg{sessionID: oldID})
	assert.NotEqual(t, oldID, tm.SessionID())
	assert.Len(t, tm.session.Transcript(), 1)
	assert.Empty(t, tm.session.History())
}

func TestCopyLastResponse(t *testing.T) {
	tm := newTestModel(t, false)
	tm.typeAndSubmit("nope")
	tm.key(tea.KeyCtrlY)
	require.Len(t, tm.copied, 1)
	assert.Equal(t, "bash: nope: command not found", tm.copied[0])
	last, _ := tm.session.LastResponse()
	assert.Equal(t, session.KindLines, last.Kind)
	assert.Equal(t, "copied to clipboard", last.Lines[0].Plain())

	tm.copy = func(string) error { return errors.New("no display") }
	tm.key(tea.KeyCtrlY)
	last, _ = tm.session.LastResponse()
	assert.Equal(t, "clipboard unavailable: no display", last.Lines[0].Plain())
}

func TestViewLayout(t *testing.T) {
	tm := newTestModel(t, false)
	view := tm.View()
	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[0], "bash — guest")
	assert.Contains(t, lines[0], "12:00:00")
	assert.Contains(t, lines[len(lines)-1], "guest@lucasmori:~/workspace $")
	assert.Contains(t, view, "Hello")
}

func TestQuitKeys(t *testing.T) {
	tm := newTestModel(t, false)
	_, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, cmd = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
}
