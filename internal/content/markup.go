package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

type runStyle struct {
	role Role
	bold bool
	href string
}

// ParseInline 将单行内联 Markdown 转换为文本段，base 为未标注文本的 role。
//
//	*x*          name
//	**x**        加粗（可与其他标记叠加）
//	`x`          keyword
//	[x](#role)   指定 role（text/keyword/name/highlight/comment）
//	[x](url)     链接，默认 name；链接 title 可写 role
//
// 块级语法（标题、列表等）只保留其中的文本；无法产生文本时原样返回。
func ParseInline(src string, base Role) []Run {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	if !base.Valid() {
		base = RoleText
	}
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var runs []Run
	stack := []runStyle{{role: base}}
	top := func() runStyle { return stack[len(stack)-1] }
	push := func(s runStyle) { stack = append(stack, s) }
	pop := func() {
		if len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}
	emit := func(value string, s runStyle) {
		if value == "" {
			return
		}
		if n := len(runs); n > 0 {
			last := &runs[n-1]
			if last.Role == s.role && last.Bold == s.bold && last.Href == s.href {
				last.Text += value
				return
			}
		}
		runs = append(runs, Run{Text: value, Role: s.role, Bold: s.bold, Href: s.href})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch v := n.(type) {
		case *ast.Emphasis:
			if !entering {
				pop()
				return ast.WalkContinue, nil
			}
			s := top()
			if v.Level >= 2 {
				s.bold = true
			} else {
				s.role = RoleName
			}
			push(s)
		case *ast.CodeSpan:
			if !entering {
				pop()
				return ast.WalkContinue, nil
			}
			s := top()
			s.role = RoleKeyword
			push(s)
		case *ast.Link:
			if !entering {
				pop()
				return ast.WalkContinue, nil
			}
			push(linkStyle(top(), string(v.Destination), string(v.Title)))
		case *ast.AutoLink:
			if entering {
				s := top()
				s.role = RoleName
				s.href = string(v.URL(source))
				emit(string(v.Label(source)), s)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				emit(string(v.Segment.Value(source)), top())
				if v.SoftLineBreak() || v.HardLineBreak() {
					emit(" ", top())
				}
			}
		case *ast.String:
			if entering {
				emit(string(v.Value), top())
			}
		case *ast.RawHTML:
			if entering {
				for i := 0; i < v.Segments.Len(); i++ {
					seg := v.Segments.At(i)
					emit(string(seg.Value(source)), top())
				}
			}
		}
		return ast.WalkContinue, nil
	})

	if len(runs) == 0 {
		return []Run{{Text: src, Role: base}}
	}
	return runs
}

func linkStyle(parent runStyle, dest, title string) runStyle {
	s := parent
	if strings.HasPrefix(dest, "#") {
		if role := Role(strings.TrimPrefix(dest, "#")); role.Valid() {
			s.role = role
			return s
		}
	}
	s.href = dest
	s.role = RoleName
	if role := Role(title); role.Valid() {
		s.role = role
	}
	return s
}
