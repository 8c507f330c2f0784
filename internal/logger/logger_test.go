package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter_SessionPrefixAndFieldSkipping(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name    string
		data    logrus.Fields
		message string
		want    string
	}{
		{
			name: "with session",
			data: logrus.Fields{
				"component": "tui",
				"session":   "3f2a9c1e-8b7d-4c1a-9e2f-000000000000",
				"caller":    "x.go:1",
				"command":   "about",
				"entries":   3,
			},
			message: "command submitted",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [tui] [session=3f2a9c1e] command submitted command=about entries=3\n",
		},
		{
			name: "without session",
			data: logrus.Fields{
				"component": "server",
				"caller":    "x.go:1",
				"foo":       "bar",
			},
			message: "hello",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [server] hello foo=bar\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			got := string(out)
			if got != tc.want {
				t.Fatalf("unexpected format:\nwant: %q\ngot:  %q", tc.want, got)
			}
			if strings.Count(got, "session") > 1 {
				t.Fatalf("session should appear only once, got: %q", got)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	l := logrus.New()
	SetRoot(l)
	t.Cleanup(func() { SetRoot(nil) })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug): %v", err)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s, want debug", l.GetLevel())
	}
	if err := SetLevel(""); err != nil || l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("empty level should be a no-op, err=%v level=%s", err, l.GetLevel())
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestSetupFileCreatesDirectory(t *testing.T) {
	l := logrus.New()
	l.SetFormatter(PlainFormatter{})
	SetRoot(l)
	t.Cleanup(func() { SetRoot(nil) })

	path := filepath.Join(t.TempDir(), "nested", "termfolio.log")
	closer, resolved, err := SetupFile(path)
	if err != nil {
		t.Fatalf("SetupFile: %v", err)
	}
	defer closer.Close()
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	Named("test").Info("written")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[test] written") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestShortenFilePath(t *testing.T) {
	cases := map[string]string{
		"/src/termfolio/internal/tui/model.go": "internal/tui/model.go",
		"/src/termfolio/cmd/termfolio/main.go": "cmd/termfolio/main.go",
		"/tmp/other.go":                        "other.go",
	}
	for in, want := range cases {
		if got := shortenFilePath(in); got != want {
			t.Fatalf("shortenFilePath(%q) = %q, want %q", in, got, want)
		}
	}
}
