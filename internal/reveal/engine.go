package reveal

import "time"

// DefaultInterval 是逐行展示的默认间隔。
const DefaultInterval = 35 * time.Millisecond

// State 描述单个响应块的展示阶段。
type State int

const (
	// StateEmpty 尚未展示任何条目。
	StateEmpty State = iota
	// StateRevealing 已展示部分条目。
	StateRevealing
	// StateDone 全部条目已展示，之后不再产生输出。
	StateDone
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateRevealing:
		return "revealing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Engine 按固定间隔逐条公开一个有限序列。每次 Tick 恰好前进一条，
// 不跳跃、不回退；新序列需要新建 Engine。
type Engine struct {
	total    int
	visible  int
	interval time.Duration
	onReveal func(visible int)
}

// New 创建一个展示 total 条目的引擎；interval <= 0 时使用 DefaultInterval。
// onReveal 在每次前进后调用（visible > 0），可为 nil。
func New(total int, interval time.Duration, onReveal func(visible int)) *Engine {
	if total < 0 {
		total = 0
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Engine{total: total, interval: interval, onReveal: onReveal}
}

// Tick 前进一条并返回是否发生了前进；完成后为 no-op。
func (e *Engine) Tick() bool {
	if e == nil || e.visible >= e.total {
		return false
	}
	e.visible++
	if e.onReveal != nil {
		e.onReveal(e.visible)
	}
	return true
}

// Visible 返回已公开的条目数。
func (e *Engine) Visible() int {
	if e == nil {
		return 0
	}
	return e.visible
}

// Total 返回序列长度。
func (e *Engine) Total() int {
	if e == nil {
		return 0
	}
	return e.total
}

// Interval 返回两次前进之间的间隔。
func (e *Engine) Interval() time.Duration {
	if e == nil {
		return DefaultInterval
	}
	return e.interval
}

// Done 判断是否已全部公开。
func (e *Engine) Done() bool {
	return e == nil || e.visible >= e.total
}

// State 返回当前阶段。空序列直接处于 StateDone。
func (e *Engine) State() State {
	switch {
	case e.Done():
		return StateDone
	case e.visible == 0:
		return StateEmpty
	default:
		return StateRevealing
	}
}
