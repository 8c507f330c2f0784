package render

import (
	"termfolio/internal/content"

	"github.com/charmbracelet/lipgloss"
)

// Palette 以十六进制颜色描述主题。
type Palette struct {
	Background string
	Text       string
	Keyword    string
	Name       string
	Highlight  string
	Comment    string
	Border     string
}

// DefaultPalette 返回默认配色。
func DefaultPalette() Palette {
	return Palette{
		Background: "#1f1f1f",
		Text:       "#e1e4e8",
		Keyword:    "#ff9b8e",
		Name:       "#bd93f9",
		Highlight:  "#ffab70",
		Comment:    "#6a737d",
		Border:     "#333333",
	}
}

// Theme 是按 role 划分的 lipgloss 样式集合。
type Theme struct {
	Text      lipgloss.Style
	Keyword   lipgloss.Style
	Name      lipgloss.Style
	Highlight lipgloss.Style
	Comment   lipgloss.Style
	Guide     lipgloss.Style
	Tab       lipgloss.Style
	Clock     lipgloss.Style
	Bar       lipgloss.Style
}

// NewTheme 由调色板构造主题，空颜色回落到默认值。
func NewTheme(p Palette) Theme {
	def := DefaultPalette()
	pick := func(v, fallback string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(fallback)
		}
		return lipgloss.Color(v)
	}
	return Theme{
		Text:      lipgloss.NewStyle().Foreground(pick(p.Text, def.Text)),
		Keyword:   lipgloss.NewStyle().Foreground(pick(p.Keyword, def.Keyword)),
		Name:      lipgloss.NewStyle().Foreground(pick(p.Name, def.Name)),
		Highlight: lipgloss.NewStyle().Foreground(pick(p.Highlight, def.Highlight)),
		Comment:   lipgloss.NewStyle().Foreground(pick(p.Comment, def.Comment)),
		Guide:     lipgloss.NewStyle().Foreground(pick(p.Border, def.Border)),
		Tab: lipgloss.NewStyle().
			Foreground(pick(p.Text, def.Text)).
			Background(pick(p.Background, def.Background)).
			Underline(true).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().Foreground(pick(p.Keyword, def.Keyword)),
		Bar:   lipgloss.NewStyle().Foreground(pick(p.Border, def.Border)),
	}
}

// PlainTheme 返回不带任何样式的主题，用于纯文本输出。
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Text: s, Keyword: s, Name: s, Highlight: s, Comment: s, Guide: s, Tab: s, Clock: s, Bar: s}
}

// Role 返回 role 对应的样式，未知 role 使用正文样式。
func (t Theme) Role(r content.Role) lipgloss.Style {
	switch r {
	case content.RoleKeyword:
		return t.Keyword
	case content.RoleName:
		return t.Name
	case content.RoleHighlight:
		return t.Highlight
	case content.RoleComment:
		return t.Comment
	default:
		return t.Text
	}
}

// Run 返回内容段的样式：role 颜色加上粗体与链接下划线。
func (t Theme) Run(r content.Run) lipgloss.Style {
	s := t.Role(r.Role)
	if r.Bold {
		s = s.Bold(true)
	}
	if r.Href != "" {
		s = s.Underline(true)
	}
	return s
}
