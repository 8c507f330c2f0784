package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"termfolio/internal/content"
	"termfolio/internal/session"
	"termfolio/internal/tui/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestREPL(t *testing.T, input string, out io.Writer, mutate func(*Options)) *REPL {
	t.Helper()
	doc, err := content.Default()
	require.NoError(t, err)
	opts := Options{
		Session: session.New(session.Options{Content: doc, ReloadDelay: time.Millisecond, DefaultSpeed: time.Millisecond}),
		In:      strings.NewReader(input),
		Out:     out,
		Width:   200,
		Theme:   render.PlainTheme(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts)
}

func TestRunPipedTranscript(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	r := newTestREPL(t, "HELP\nnope\n\n", &buf, nil)
	require.NoError(t, r.Run(context.Background()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Hello 👋 I'm Lucas Mori."), out)
	assert.Contains(t, out, "➜ guest@lucasmori:~/workspace $ HELP\n")
	assert.Contains(t, out, "about       // About me & Career transition\n")
	assert.Contains(t, out, "clear       // Clear terminal\n")
	assert.Contains(t, out, "bash: nope: command not found\n")
	assert.True(t, strings.HasSuffix(out, "➜ guest@lucasmori:~/workspace $\n"), "empty command echoes a bare prompt: %q", out)
}

func TestRunAnimatedMatchesInstant(t *testing.T) {
	defer goleak.VerifyNone(t)

	var instant, animated bytes.Buffer
	require.NoError(t, newTestREPL(t, "about\n", &instant, nil).Run(context.Background()))
	require.NoError(t, newTestREPL(t, "about\n", &animated, func(o *Options) { o.Animate = true }).Run(context.Background()))
	assert.Equal(t, instant.String(), animated.String())
}

func TestRunInteractiveClearAndReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	var buf bytes.Buffer
	r := newTestREPL(t, "about\nclear\nreload\n", &buf, func(o *Options) { o.Interactive = true })
	oldID := r.session.ID()
	require.NoError(t, r.Run(context.Background()))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, clearScreen))
	assert.Contains(t, out, "System rebooting...")
	assert.NotContains(t, out, "$ about\n", "interactive mode relies on terminal echo")
	assert.NotEqual(t, oldID, r.session.ID())
	assert.Len(t, r.session.Transcript(), 1)
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	pr, pw := io.Pipe()
	defer pw.Close()
	r := newTestREPL(t, "", io.Discard, func(o *Options) { o.In = pr })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	pw.Close()
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunReportsWriteError(t *testing.T) {
	r := newTestREPL(t, "about\n", failingWriter{}, nil)
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
