package render

import (
	"strings"

	"termfolio/internal/content"
	"termfolio/internal/session"

	"github.com/mattn/go-runewidth"
)

const (
	guideText = "│ "
	helpGap   = 4
)

// Prompt 描述提示符中的用户、主机与路径。
type Prompt struct {
	User string
	Host string
	Path string
}

// DefaultPrompt 返回默认提示符身份。
func DefaultPrompt() Prompt {
	return Prompt{User: "guest", Host: "lucasmori", Path: "~/workspace"}
}

// Options 控制转录渲染。
type Options struct {
	Width  int
	Theme  Theme
	Prompt Prompt
}

// PromptSpans 返回 `➜ user@host:path $ ` 的样式化片段。
func PromptSpans(p Prompt, th Theme) []Span {
	return []Span{
		{Text: "➜ ", Style: th.Keyword.Bold(true)},
		{Text: p.User + "@" + p.Host, Style: th.Highlight},
		{Text: ":", Style: th.Comment},
		{Text: p.Path, Style: th.Name},
		{Text: " $ ", Style: th.Text},
	}
}

// PromptText 返回无样式的提示符。
func PromptText(p Prompt) string {
	var b strings.Builder
	for _, sp := range PromptSpans(p, PlainTheme()) {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// RenderTranscript 渲染整个转录。visible 返回条目当前展示的项数，
// 为 nil 时全部展示。
func RenderTranscript(entries []session.Entry, visible func(session.Entry) int, opts Options) []Line {
	var out []Line
	for i, e := range entries {
		n := e.Items()
		if visible != nil {
			n = visible(e)
		}
		if e.Kind == session.KindCommand && i > 0 {
			out = append(out, Line{})
		}
		out = append(out, RenderEntry(e, n, opts)...)
	}
	return out
}

// RenderEntry 渲染单个条目的前 n 项。
func RenderEntry(e session.Entry, n int, opts Options) []Line {
	switch e.Kind {
	case session.KindCommand:
		spans := PromptSpans(opts.Prompt, opts.Theme)
		if e.Text != "" {
			spans = append(spans, Span{Text: e.Text, Style: opts.Theme.Text})
		}
		return WrapSpans(spans, opts.Width)
	case session.KindHelp:
		return renderHelp(e.Help, opts)
	default:
		lines := e.Lines
		if n < len(lines) {
			lines = lines[:max(n, 0)]
		}
		var out []Line
		for _, l := range lines {
			out = append(out, RenderContentLine(l, opts.Theme, opts.Width)...)
		}
		return out
	}
}

// RenderContentLine 渲染一行内容：按宽度换行，缩进层级画出左侧引导线。
func RenderContentLine(l content.Line, th Theme, width int) []Line {
	if l.Blank() {
		return []Line{{}}
	}
	spans := RunSpans(l.Runs, th)
	if l.Indent <= 0 {
		return WrapSpans(spans, width)
	}
	guide := strings.Repeat(guideText, l.Indent)
	inner := width - runewidth.StringWidth(guide)
	if width > 0 && inner < 1 {
		inner = 1
	}
	g := Span{Text: guide, Style: th.Guide}
	return PrefixLines(WrapSpans(spans, inner), g, g)
}

// RunSpans 将内容段转换为 Span。链接文字不含目标地址时在其后附上地址。
func RunSpans(runs []content.Run, th Theme) []Span {
	out := make([]Span, 0, len(runs))
	for _, r := range runs {
		out = append(out, Span{Text: r.Text, Style: th.Run(r)})
		if r.Href != "" && !strings.Contains(r.Href, strings.TrimSpace(r.Text)) {
			out = append(out, Span{Text: " <" + r.Href + ">", Style: th.Comment})
		}
	}
	return out
}

func renderHelp(items []session.HelpItem, opts Options) []Line {
	nameW := 0
	for _, it := range items {
		nameW = max(nameW, runewidth.StringWidth(it.Name))
	}
	col := nameW + helpGap
	descW := opts.Width - col
	if opts.Width > 0 && descW < 8 {
		descW = 8
	}
	out := make([]Line, 0, len(items))
	for _, it := range items {
		name := Span{Text: runewidth.FillRight(it.Name, col), Style: opts.Theme.Keyword.Bold(true)}
		desc := WrapSpans([]Span{{Text: "// " + it.Description, Style: opts.Theme.Comment}}, descW)
		out = append(out, PrefixLines(desc, name, Span{Text: strings.Repeat(" ", col)})...)
	}
	return out
}
