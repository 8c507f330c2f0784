package session

import (
	"fmt"
	"strings"
	"time"

	"termfolio/internal/content"
	"termfolio/internal/reveal"

	"github.com/google/uuid"
)

// DefaultReloadDelay 是 reload 命令到会话重启之间的延迟。
const DefaultReloadDelay = time.Second

const rebootMessage = "System rebooting..."

// Options 配置一个会话。
type Options struct {
	Content      content.Document
	DefaultSpeed time.Duration
	ReloadDelay  time.Duration
	// Suggest 为真时，未知命令的错误条目附带最接近的命令。
	Suggest bool
}

// EffectKind 描述提交后宿主需要执行的动作。
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectClear 表示转录已重置，宿主应丢弃进行中的展示状态。
	EffectClear
	// EffectReload 表示宿主应在 Delay 之后调用 Restart。
	EffectReload
)

func (k EffectKind) String() string {
	switch k {
	case EffectClear:
		return "clear"
	case EffectReload:
		return "reload"
	default:
		return "none"
	}
}

// MarshalText 让 EffectKind 在 JSON 中输出为名称。
func (k EffectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Effect 是 Submit 的返回值。
type Effect struct {
	Kind  EffectKind    `json:"kind"`
	Delay time.Duration `json:"delay_ns,omitempty"`
}

// Session 持有转录、输入缓冲与命令历史。非并发安全，由单一事件循环驱动。
type Session struct {
	opts       Options
	id         string
	transcript []Entry
	history    *History
	input      string
	nextID     int
}

// New 创建会话并写入介绍内容。
func New(opts Options) *Session {
	if opts.DefaultSpeed <= 0 {
		opts.DefaultSpeed = reveal.DefaultInterval
	}
	if opts.ReloadDelay <= 0 {
		opts.ReloadDelay = DefaultReloadDelay
	}
	s := &Session{opts: opts, history: NewHistory()}
	s.Restart()
	return s
}

// ID 返回当前会话标识，每次 Restart 都会更换。
func (s *Session) ID() string { return s.id }

// Restart 丢弃转录、历史与输入，重新开始一个会话。条目 ID 不会复用。
func (s *Session) Restart() {
	s.id = uuid.NewString()
	s.history = NewHistory()
	s.input = ""
	s.seed()
}

func (s *Session) seed() {
	intro, _ := s.opts.Content.Block(content.BlockIntro)
	s.transcript = nil
	s.append(Entry{Kind: KindCustomLines, Lines: intro.Lines, Speed: intro.Speed})
}

func (s *Session) append(e Entry) Entry {
	s.nextID++
	e.ID = s.nextID
	if e.Speed <= 0 {
		e.Speed = s.opts.DefaultSpeed
	}
	s.transcript = append(s.transcript, e)
	return e
}

// Submit 提交一行输入并按分发表生成条目。
func (s *Session) Submit(raw string) Effect {
	trimmed := strings.TrimSpace(raw)
	name := strings.ToLower(trimmed)
	if trimmed != "" {
		s.history.Add(trimmed)
	}
	s.input = ""

	if name == "" {
		s.append(Entry{Kind: KindCommand})
		return Effect{}
	}
	cmd, ok := commands[name]
	if !ok {
		s.append(Entry{Kind: KindCommand, Text: trimmed})
		s.append(s.notFound(trimmed))
		return Effect{}
	}
	switch cmd.action {
	case actionClear:
		s.seed()
		return Effect{Kind: EffectClear}
	case actionReload:
		s.append(Entry{Kind: KindCommand, Text: trimmed})
		s.append(Entry{
			Kind:  KindError,
			Text:  rebootMessage,
			Lines: []content.Line{content.TextLine(content.RoleKeyword, rebootMessage)},
		})
		return Effect{Kind: EffectReload, Delay: s.opts.ReloadDelay}
	default:
		s.append(Entry{Kind: KindCommand, Text: trimmed})
		s.append(cmd.produce(s.opts.Content))
		return Effect{}
	}
}

func (s *Session) notFound(input string) Entry {
	msg := fmt.Sprintf("bash: %s: command not found", input)
	e := Entry{
		Kind:  KindError,
		Text:  msg,
		Lines: []content.Line{content.TextLine(content.RoleKeyword, msg)},
	}
	if s.opts.Suggest {
		if hint, ok := Suggest(input); ok {
			e.Lines = append(e.Lines, content.TextLine(content.RoleComment, fmt.Sprintf("did you mean: %s?", hint)))
		}
	}
	return e
}

// Announce 追加一条宿主通知（lines 条目），返回新条目。
func (s *Session) Announce(lines ...string) Entry {
	out := make([]content.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, content.TextLine(content.RoleHighlight, l))
	}
	return s.append(Entry{Kind: KindLines, Lines: out})
}

// RecallPrevious 将输入替换为更早的一条历史命令。
func (s *Session) RecallPrevious() bool {
	text, ok := s.history.Prev()
	if ok {
		s.input = text
	}
	return ok
}

// RecallNext 将输入替换为更新的一条历史命令；越过最新一条时清空输入。
func (s *Session) RecallNext() bool {
	text, ok := s.history.Next()
	if ok {
		s.input = text
	}
	return ok
}

// SetInput 整体替换输入缓冲。
func (s *Session) SetInput(text string) { s.input = text }

func (s *Session) Input() string { return s.input }

// Cursor 返回历史游标，-1 表示未浏览。
func (s *Session) Cursor() int { return s.history.Cursor() }

// History 返回已提交命令的副本。
func (s *Session) History() []string { return s.history.Entries() }

// Transcript 返回转录副本。
func (s *Session) Transcript() []Entry {
	return append([]Entry(nil), s.transcript...)
}

// Since 返回 ID 大于 id 的条目。
func (s *Session) Since(id int) []Entry {
	var out []Entry
	for _, e := range s.transcript {
		if e.ID > id {
			out = append(out, e)
		}
	}
	return out
}

// LastResponse 返回最新的非命令条目。
func (s *Session) LastResponse() (Entry, bool) {
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Kind != KindCommand {
			return s.transcript[i], true
		}
	}
	return Entry{}, false
}
