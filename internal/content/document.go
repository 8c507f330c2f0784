package content

import (
	"sort"
	"strings"
	"time"
)

// Role 是一段文本在主题中的配色槽位。
type Role string

const (
	RoleText      Role = "text"
	RoleKeyword   Role = "keyword"
	RoleName      Role = "name"
	RoleHighlight Role = "highlight"
	RoleComment   Role = "comment"
)

// Valid 判断 role 是否属于已知配色槽位。
func (r Role) Valid() bool {
	switch r {
	case RoleText, RoleKeyword, RoleName, RoleHighlight, RoleComment:
		return true
	default:
		return false
	}
}

// Run 是一段带样式的文本。
type Run struct {
	Text string `json:"text"`
	Role Role   `json:"role"`
	Bold bool   `json:"bold,omitempty"`
	Href string `json:"href,omitempty"`
}

// Line 是逐行展示的最小单位；Indent 表示左侧引导线的层级。
type Line struct {
	Runs   []Run `json:"runs"`
	Indent int   `json:"indent,omitempty"`
}

// Plain 返回去除样式后的文本。
func (l Line) Plain() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Blank 判断行是否只用于留白。
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Plain()) == ""
}

// TextLine 用单一 role 构造一行。
func TextLine(role Role, text string) Line {
	return Line{Runs: []Run{{Text: text, Role: role}}}
}

// Block 是某个命令的完整响应内容。Speed 为 0 时使用默认速度。
type Block struct {
	Name  string        `json:"name"`
	Speed time.Duration `json:"speed,omitempty"`
	Lines []Line        `json:"lines"`
}

// 内置块名称。
const (
	BlockIntro    = "intro"
	BlockAbout    = "about"
	BlockResume   = "resume"
	BlockStack    = "stack"
	BlockProjects = "projects"
	BlockSocials  = "socials"
)

// RequiredBlocks 列出内容文件必须提供的块。
var RequiredBlocks = []string{
	BlockIntro,
	BlockAbout,
	BlockResume,
	BlockStack,
	BlockProjects,
	BlockSocials,
}

// Document 汇总所有静态内容块。
type Document struct {
	blocks map[string]Block
}

// NewDocument 由块列表构造文档，后出现的同名块覆盖前者。
func NewDocument(blocks ...Block) Document {
	m := make(map[string]Block, len(blocks))
	for _, b := range blocks {
		m[b.Name] = b
	}
	return Document{blocks: m}
}

// Block 按名称返回块，返回的切片为副本。
func (d Document) Block(name string) (Block, bool) {
	b, ok := d.blocks[name]
	if !ok {
		return Block{}, false
	}
	b.Lines = append([]Line(nil), b.Lines...)
	return b, true
}

// Names 返回文档中的块名称：内置块按固定顺序在前，其余按字母序追加。
func (d Document) Names() []string {
	out := make([]string, 0, len(d.blocks))
	seen := map[string]bool{}
	for _, name := range RequiredBlocks {
		if _, ok := d.blocks[name]; ok {
			out = append(out, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range d.blocks {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
