package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span 表示一段文本及其样式。
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line 由多个 Span 组成，可选整体样式。
type Line struct {
	Spans []Span
	Style lipgloss.Style
}

// Plain 返回去除样式后的文本。
func (l Line) Plain() string {
	var b strings.Builder
	for _, sp := range l.Spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// LinesToStrings 将样式化的行转换为字符串列表。
func LinesToStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		segments := make([]string, 0, len(line.Spans))
		for _, sp := range line.Spans {
			segments = append(segments, sp.Style.Render(sp.Text))
		}
		text := strings.Join(segments, "")
		text = line.Style.Render(text)
		out = append(out, text)
	}
	return out
}

// LinesToPlainStrings 丢弃样式，只保留文本，并去掉行尾空白。
func LinesToPlainStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimRight(line.Plain(), " "))
	}
	return out
}

// PrefixLines 为首行/续行添加前缀。
func PrefixLines(lines []Line, initial Span, subsequent Span) []Line {
	out := make([]Line, 0, len(lines))
	for i, l := range lines {
		spans := make([]Span, 0, len(l.Spans)+1)
		if i == 0 {
			spans = append(spans, initial)
		} else {
			spans = append(spans, subsequent)
		}
		spans = append(spans, l.Spans...)
		out = append(out, Line{Spans: spans, Style: l.Style})
	}
	return out
}
