package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultSource []byte

type blockSpec struct {
	SpeedMS int        `yaml:"speed_ms"`
	Lines   []lineSpec `yaml:"lines"`
}

type lineSpec struct {
	Text   string `yaml:"text"`
	Style  Role   `yaml:"style"`
	Indent int    `yaml:"indent"`
	Raw    bool   `yaml:"raw"`
}

// UnmarshalYAML 允许行写成纯字符串或带属性的映射。
func (l *lineSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			*l = lineSpec{}
			return nil
		}
		*l = lineSpec{Text: node.Value}
		return nil
	}
	type plain lineSpec
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*l = lineSpec(p)
	return nil
}

// Default 返回内置的内容文档。
func Default() (Document, error) {
	return Parse(defaultSource)
}

// Load 从 YAML 文件加载内容；path 为空时使用内置内容。
func Load(path string) (Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read content %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("parse content %s: %w", path, err)
	}
	return doc, nil
}

// Parse 解析 YAML 内容文档并校验内置块齐全。
func Parse(data []byte) (Document, error) {
	var specs map[string]blockSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return Document{}, err
	}
	if len(specs) == 0 {
		return Document{}, errors.New("content document is empty")
	}
	for _, name := range RequiredBlocks {
		if _, ok := specs[name]; !ok {
			return Document{}, fmt.Errorf("content block %q is missing", name)
		}
	}
	blocks := make([]Block, 0, len(specs))
	for name, spec := range specs {
		b, err := buildBlock(name, spec)
		if err != nil {
			return Document{}, err
		}
		blocks = append(blocks, b)
	}
	return NewDocument(blocks...), nil
}

func buildBlock(name string, spec blockSpec) (Block, error) {
	if spec.SpeedMS < 0 {
		return Block{}, fmt.Errorf("content block %q: speed_ms must not be negative", name)
	}
	b := Block{
		Name:  name,
		Speed: time.Duration(spec.SpeedMS) * time.Millisecond,
		Lines: make([]Line, 0, len(spec.Lines)),
	}
	for i, ls := range spec.Lines {
		role := ls.Style
		if role == "" {
			role = RoleText
		}
		if !role.Valid() {
			return Block{}, fmt.Errorf("content block %q line %d: unknown style %q", name, i+1, ls.Style)
		}
		if ls.Indent < 0 {
			return Block{}, fmt.Errorf("content block %q line %d: indent must not be negative", name, i+1)
		}
		line := Line{Indent: ls.Indent}
		switch {
		case ls.Text == "":
		case ls.Raw:
			line.Runs = []Run{{Text: ls.Text, Role: role}}
		default:
			line.Runs = ParseInline(ls.Text, role)
		}
		b.Lines = append(b.Lines, line)
	}
	return b, nil
}
