package session

import (
	"fmt"
	"time"

	"termfolio/internal/content"
)

// Kind 区分转录条目的种类。
type Kind int

const (
	KindCommand Kind = iota
	KindCustomLines
	KindLines
	KindError
	KindHelp
)

var kindNames = map[Kind]string{
	KindCommand:     "command",
	KindCustomLines: "custom-lines",
	KindLines:       "lines",
	KindError:       "error",
	KindHelp:        "help",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText 让 Kind 在 JSON 中输出为名称。
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown entry kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText 解析 Kind 名称。
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown entry kind %q", string(b))
}

// HelpItem 是帮助列表中的一项。
type HelpItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Entry 是转录中的一条记录，创建后不再修改。
//
// command 使用 Text；custom-lines、lines 与 error 使用 Lines（error 的首行同时写入 Text）；
// help 使用 Help。
// Speed 为逐项展示的间隔，创建时已解析为块覆盖值或会话默认值。
type Entry struct {
	ID    int            `json:"id"`
	Kind  Kind           `json:"kind"`
	Text  string         `json:"text,omitempty"`
	Lines []content.Line `json:"lines,omitempty"`
	Help  []HelpItem     `json:"help,omitempty"`
	Speed time.Duration  `json:"speed_ns,omitempty"`
}

// Items 返回需要逐项展示的数量。
func (e Entry) Items() int {
	switch e.Kind {
	case KindCustomLines, KindLines, KindError:
		return len(e.Lines)
	case KindHelp:
		return len(e.Help)
	default:
		return 0
	}
}

// Animated 判断条目是否走逐行展示。命令回显与帮助列表直接完整显示。
func (e Entry) Animated() bool {
	switch e.Kind {
	case KindCustomLines, KindLines, KindError:
		return len(e.Lines) > 0
	default:
		return false
	}
}
