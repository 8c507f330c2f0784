package repl

import (
	"fmt"
	"io"
	"os"

	"termfolio/internal/tui/render"
)

// Scrollback 将渲染完成的行追加写入终端的自然滚动缓冲（或任意 io.Writer）。
// 写入失败后保留首个错误，后续写入直接跳过。
type Scrollback struct {
	w     io.Writer
	width int
	err   error
}

type ScrollbackOptions struct {
	Writer io.Writer
	Width  int
}

func NewScrollback(opts ScrollbackOptions) *Scrollback {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return &Scrollback{w: w, width: width}
}

func (s *Scrollback) SetWidth(width int) {
	if s == nil {
		return
	}
	if width > 0 {
		s.width = width
	}
}

func (s *Scrollback) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// AppendLines 写入多行，返回首个写入错误。
func (s *Scrollback) AppendLines(lines []render.Line) error {
	if s == nil || s.w == nil {
		return nil
	}
	for _, line := range render.LinesToStrings(lines) {
		if s.err != nil {
			return s.err
		}
		_, s.err = fmt.Fprintln(s.w, line)
	}
	return s.err
}

// WriteString 直接写入未换行的文本（提示符、控制序列）。
func (s *Scrollback) WriteString(text string) error {
	if s == nil || s.w == nil || s.err != nil {
		return s.Err()
	}
	_, s.err = io.WriteString(s.w, text)
	return s.err
}

// Err 返回首个写入错误。
func (s *Scrollback) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}
