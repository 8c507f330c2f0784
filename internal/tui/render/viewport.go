package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Viewport 包装 bubbles viewport，跳过未变化的内容并在底部时保持贴底。
type Viewport struct {
	viewport.Model
	lastLines []string
}

// NewViewport 创建指定尺寸的视口。
func NewViewport(width, height int) Viewport {
	vp := viewport.New(width, height)
	return Viewport{Model: vp}
}

// Resize 更新宽高；宽度变化时丢弃缓存的行。
func (v *Viewport) Resize(width, height int) {
	if v == nil {
		return
	}
	if v.Width == width && v.Height == height {
		return
	}
	if v.Width != width {
		v.Invalidate()
	}
	v.Width = width
	v.Height = height
}

// HandleUpdate 代理 bubbles 的 Update（鼠标滚轮等）。
func (v *Viewport) HandleUpdate(msg tea.Msg) tea.Cmd {
	if v == nil {
		return nil
	}
	var cmd tea.Cmd
	v.Model, cmd = v.Model.Update(msg)
	return cmd
}

// SetLines 更新内容；更新前位于底部时保持在底部。
func (v *Viewport) SetLines(lines []string) {
	if v == nil {
		return
	}
	if slices.Equal(lines, v.lastLines) {
		return
	}
	stickToBottom := v.AtBottom()
	v.lastLines = append([]string(nil), lines...)
	v.SetContent(strings.Join(lines, "\n"))
	if stickToBottom {
		v.GotoBottom()
	}
}

// Follow 更新内容并无条件滚动到底部。
func (v *Viewport) Follow(lines []string) {
	if v == nil {
		return
	}
	v.SetLines(lines)
	v.GotoBottom()
}

// Invalidate 清空已缓存的行，下次 SetLines 必定重设内容。
func (v *Viewport) Invalidate() {
	if v == nil {
		return
	}
	v.lastLines = nil
}
