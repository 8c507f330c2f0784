package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// piece 是换行时不可拆分的单元：一个词（可能跨多个 Span）或一段空白。
type piece struct {
	spans []Span
	width int
	space bool
}

// WrapSpans 按显示宽度对带样式的文本做词级别换行。首行的前导空白保留，
// 换行处的空白丢弃，超出宽度的单词按字符拆分。结果至少包含一行。
func WrapSpans(spans []Span, width int) []Line {
	if width <= 0 {
		return []Line{{Spans: append([]Span(nil), spans...)}}
	}
	var (
		lines   []Line
		cur     []Span
		curW    int
		pending *piece
	)
	flush := func() {
		lines = append(lines, Line{Spans: cur})
		cur = nil
		curW = 0
	}
	for _, p := range tokenize(spans) {
		if p.space {
			if curW == 0 && len(lines) == 0 {
				cur = append(cur, p.spans...)
				curW += p.width
				continue
			}
			pending = &p
			continue
		}
		gap := 0
		if pending != nil && curW > 0 {
			gap = pending.width
		}
		if curW > 0 && curW+gap+p.width > width {
			flush()
			gap = 0
		}
		if gap > 0 {
			cur = append(cur, pending.spans...)
			curW += gap
		}
		pending = nil
		if curW+p.width <= width {
			cur = append(cur, p.spans...)
			curW += p.width
			continue
		}
		for _, sp := range p.spans {
			var b strings.Builder
			for _, r := range sp.Text {
				rw := runewidth.RuneWidth(r)
				if curW+b.Len() > 0 && curW+runewidth.StringWidth(b.String())+rw > width {
					if b.Len() > 0 {
						cur = append(cur, Span{Text: b.String(), Style: sp.Style})
						b.Reset()
					}
					flush()
				}
				b.WriteRune(r)
			}
			if b.Len() > 0 {
				cur = append(cur, Span{Text: b.String(), Style: sp.Style})
				curW += runewidth.StringWidth(b.String())
			}
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func tokenize(spans []Span) []piece {
	var out []piece
	for _, sp := range spans {
		for _, seg := range splitSpaces(sp.Text) {
			space := strings.TrimFunc(seg, unicode.IsSpace) == ""
			part := Span{Text: seg, Style: sp.Style}
			w := runewidth.StringWidth(seg)
			if n := len(out); n > 0 && out[n-1].space == space {
				out[n-1].spans = append(out[n-1].spans, part)
				out[n-1].width += w
				continue
			}
			out = append(out, piece{spans: []Span{part}, width: w, space: space})
		}
	}
	return out
}

// splitSpaces 将文本切分为交替的空白段与非空白段。
func splitSpaces(s string) []string {
	var out []string
	start := 0
	prev := -1
	for i, r := range s {
		kind := 0
		if unicode.IsSpace(r) {
			kind = 1
		}
		if prev != -1 && kind != prev {
			out = append(out, s[start:i])
			start = i
		}
		prev = kind
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
