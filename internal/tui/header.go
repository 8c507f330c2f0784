package tui

import (
	"fmt"
	"strings"
	"time"

	"termfolio/internal/tui/render"

	"github.com/mattn/go-runewidth"
)

// HeaderOptions 控制标题栏的初始化。
type HeaderOptions struct {
	User  string
	Theme render.Theme
	Clock func() time.Time
}

// HeaderWidget 渲染顶部标题栏：左侧标签页，右侧会话时长与时钟。
type HeaderWidget struct {
	user    string
	theme   render.Theme
	clock   func() time.Time
	started time.Time
}

// NewHeaderWidget 构造标题栏，Clock 为空时使用 time.Now。
func NewHeaderWidget(opts HeaderOptions) *HeaderWidget {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &HeaderWidget{
		user:    opts.User,
		theme:   opts.Theme,
		clock:   clock,
		started: clock(),
	}
}

// Restart 重置会话计时。
func (w *HeaderWidget) Restart() {
	if w == nil {
		return
	}
	w.started = w.now()
}

// Uptime 返回自会话开始以来的时长。
func (w *HeaderWidget) Uptime() time.Duration {
	if w == nil {
		return 0
	}
	return w.now().Sub(w.started)
}

// Line 绘制标题栏；宽度不足时先省略会话时长，再截断。
func (w *HeaderWidget) Line(width int) render.Line {
	if w == nil || width <= 0 {
		return render.Line{}
	}
	now := w.now()
	tab := render.Span{Text: " bash — " + w.user + " ", Style: w.theme.Tab}
	clock := render.Span{Text: now.Format("15:04:05"), Style: w.theme.Clock}
	uptime := render.Span{
		Text:  "up " + fmtElapsedCompact(uint64(now.Sub(w.started).Seconds())) + "  ",
		Style: w.theme.Comment,
	}

	right := []render.Span{uptime, clock}
	if spansWidth(tab)+spansWidth(right...)+1 > width {
		right = []render.Span{clock}
	}
	gap := width - spansWidth(tab) - spansWidth(right...)
	if gap < 1 {
		return render.Line{Spans: clampSpans([]render.Span{tab}, width)}
	}
	spans := append([]render.Span{tab, {Text: strings.Repeat(" ", gap), Style: w.theme.Bar}}, right...)
	return render.Line{Spans: clampSpans(spans, width)}
}

func (w *HeaderWidget) now() time.Time {
	if w.clock != nil {
		return w.clock()
	}
	return time.Now()
}

// fmtElapsedCompact 将秒数格式化为友好字符串。
func fmtElapsedCompact(elapsedSecs uint64) string {
	switch {
	case elapsedSecs < 60:
		return fmt.Sprintf("%ds", elapsedSecs)
	case elapsedSecs < 3600:
		minutes := elapsedSecs / 60
		seconds := elapsedSecs % 60
		return fmt.Sprintf("%dm %02ds", minutes, seconds)
	default:
		hours := elapsedSecs / 3600
		minutes := (elapsedSecs % 3600) / 60
		seconds := elapsedSecs % 60
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
	}
}

func spansWidth(spans ...render.Span) int {
	w := 0
	for _, sp := range spans {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

func clampSpans(spans []render.Span, width int) []render.Span {
	if width <= 0 {
		return nil
	}
	remaining := width
	out := make([]render.Span, 0, len(spans))
	for _, sp := range spans {
		if remaining <= 0 {
			break
		}
		tw := runewidth.StringWidth(sp.Text)
		if tw <= remaining {
			out = append(out, sp)
			remaining -= tw
			continue
		}
		text := truncateToWidth(sp.Text, remaining)
		if text != "" {
			sp.Text = text
			out = append(out, sp)
			remaining = 0
		}
	}
	return out
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := 0
	out := make([]rune, 0, len(text))
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}
