package tui

import (
	"strings"
	"time"

	"termfolio/internal/logger"
	"termfolio/internal/reveal"
	"termfolio/internal/session"
	"termfolio/internal/tui/render"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// Options 配置交互式终端。
type Options struct {
	Session *session.Session
	Prompt  render.Prompt
	Theme   render.Theme
	// Animate 为假时所有响应立即完整显示。
	Animate bool
	// Clock 供时钟与会话计时使用，默认 time.Now。
	Clock func() time.Time
	// Clipboard 写入系统剪贴板，默认 clipboard.WriteAll。
	Clipboard func(string) error
	// AltScreen 为真时使用备用屏幕。
	AltScreen bool
	Logger    *logger.LogEntry
}

type revealTickMsg struct {
	id int
}

type clockTickMsg time.Time

type reloadMsg struct {
	sessionID string
}

// Model 是 Bubble Tea 模型：转录视口、提示符输入与顶部标题栏。
type Model struct {
	session  *session.Session
	input    textinput.Model
	viewport render.Viewport
	header   *HeaderWidget
	theme    render.Theme
	prompt   render.Prompt
	animate  bool
	copy     func(string) error
	baseLog  *logger.LogEntry
	log      *logger.LogEntry

	// reveals 以条目 ID 为键；不在表中的条目视为已完整显示。
	reveals map[int]*reveal.Engine
	lastID  int

	width           int
	height          int
	transcriptDirty bool
	follow          bool
}

// New 创建模型并为介绍内容启动逐行展示。
func New(opts Options) *Model {
	sess := opts.Session
	if sess == nil {
		sess = session.New(session.Options{})
	}
	prompt := opts.Prompt
	if prompt == (render.Prompt{}) {
		prompt = render.DefaultPrompt()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("tui")
	}

	ti := textinput.New()
	ti.Prompt = strings.Join(render.LinesToStrings([]render.Line{{Spans: render.PromptSpans(prompt, opts.Theme)}}), "")
	ti.TextStyle = opts.Theme.Text
	ti.Cursor.Style = opts.Theme.Text
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{
		session:  sess,
		input:    ti,
		viewport: render.NewViewport(80, 20),
		header:   NewHeaderWidget(HeaderOptions{User: prompt.User, Theme: opts.Theme, Clock: opts.Clock}),
		theme:    opts.Theme,
		prompt:   prompt,
		animate:  opts.Animate,
		copy:     copyFn,
		baseLog:  log,
		log:      logger.WithSession(log, sess.ID()),
		reveals:  map[int]*reveal.Engine{},
		width:    80,
		height:   24,
	}
	return m
}

// Init 启动光标闪烁、时钟与介绍内容的展示。
func (m *Model) Init() tea.Cmd {
	m.log.Info("session started")
	cmds := []tea.Cmd{textinput.Blink, m.tickClock()}
	cmds = append(cmds, m.trackNewEntries()...)
	m.refreshTranscript()
	return tea.Batch(cmds...)
}

// Update 处理按键、计时与窗口事件。
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.finish(cmds...)
	case revealTickMsg:
		if cmd := m.advanceReveal(msg.id); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m.finish(cmds...)
	case clockTickMsg:
		cmds = append(cmds, m.tickClock())
		return m.finish(cmds...)
	case reloadMsg:
		if msg.sessionID != m.session.ID() {
			return m.finish(cmds...)
		}
		m.restart()
		cmds = append(cmds, m.trackNewEntries()...)
		return m.finish(cmds...)
	case tea.MouseMsg:
		if cmd := m.viewport.HandleUpdate(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m.finish(cmds...)
	case tea.KeyMsg:
		if cmd, handled := m.handleScrollKeys(msg); handled {
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m.finish(cmds...)
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.log.Info("session closed")
			cmds = append(cmds, tea.Quit)
			return m.finish(cmds...)
		case "up":
			if m.session.RecallPrevious() {
				m.syncInput()
			}
			return m.finish(cmds...)
		case "down":
			if m.session.RecallNext() {
				m.syncInput()
			}
			return m.finish(cmds...)
		case "tab":
			if name, ok := session.Complete(m.input.Value()); ok {
				m.session.SetInput(name)
				m.syncInput()
			}
			return m.finish(cmds...)
		case "ctrl+y":
			cmds = append(cmds, m.copyLastResponse()...)
			return m.finish(cmds...)
		case "enter":
			cmds = append(cmds, m.submit()...)
			return m.finish(cmds...)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetInput(m.input.Value())
	cmds = append(cmds, cmd)
	return m.finish(cmds...)
}

func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	if m.transcriptDirty {
		m.flushTranscript()
	}
	return m, tea.Batch(cmds...)
}

// View 绘制标题栏、转录与提示符。
func (m *Model) View() string {
	header := render.LinesToStrings([]render.Line{m.header.Line(m.width)})[0]
	return header + "\n" + m.viewport.View() + "\n" + m.input.View()
}

// Session 返回底层会话。
func (m *Model) Session() *session.Session { return m.session }

// SessionID 返回当前会话标识。
func (m *Model) SessionID() string { return m.session.ID() }

func (m *Model) submit() []tea.Cmd {
	raw := m.input.Value()
	m.session.SetInput(raw)
	eff := m.session.Submit(raw)
	m.input.Reset()
	m.log.WithField("command", strings.TrimSpace(raw)).WithField("effect", eff.Kind).Debug("command submitted")

	var cmds []tea.Cmd
	switch eff.Kind {
	case session.EffectClear:
		m.reveals = map[int]*reveal.Engine{}
		m.viewport.Invalidate()
	case session.EffectReload:
		id := m.session.ID()
		cmds = append(cmds, tea.Tick(eff.Delay, func(time.Time) tea.Msg { return reloadMsg{sessionID: id} }))
	}
	cmds = append(cmds, m.trackNewEntries()...)
	m.follow = true
	m.refreshTranscript()
	return cmds
}

func (m *Model) restart() {
	m.session.Restart()
	m.reveals = map[int]*reveal.Engine{}
	m.header.Restart()
	m.input.Reset()
	m.viewport.Invalidate()
	m.log = logger.WithSession(m.baseLog, m.session.ID())
	m.log.Info("session restarted")
	m.follow = true
	m.refreshTranscript()
}

// trackNewEntries 为尚未见过的条目创建展示引擎并调度首个 tick。
func (m *Model) trackNewEntries() []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.session.Since(m.lastID) {
		m.lastID = max(m.lastID, e.ID)
		if !m.animate || !e.Animated() {
			continue
		}
		engine := reveal.New(e.Items(), e.Speed, func(int) { m.follow = true })
		m.reveals[e.ID] = engine
		cmds = append(cmds, revealTick(e.ID, engine.Interval()))
	}
	return cmds
}

// advanceReveal 推进一步；条目已被替换时丢弃该 tick。
func (m *Model) advanceReveal(id int) tea.Cmd {
	engine, ok := m.reveals[id]
	if !ok {
		m.log.WithField("entry", id).Debug("dropped stale reveal tick")
		return nil
	}
	engine.Tick()
	m.refreshTranscript()
	if engine.Done() {
		delete(m.reveals, id)
		return nil
	}
	return revealTick(id, engine.Interval())
}

func revealTick(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return revealTickMsg{id: id} })
}

func (m *Model) tickClock() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

// visible 返回条目当前展示的项数。
func (m *Model) visible(e session.Entry) int {
	if engine, ok := m.reveals[e.ID]; ok {
		return engine.Visible()
	}
	return e.Items()
}

func (m *Model) copyLastResponse() []tea.Cmd {
	e, ok := m.session.LastResponse()
	if !ok {
		return nil
	}
	opts := render.Options{Theme: render.PlainTheme(), Prompt: m.prompt}
	text := strings.Join(render.LinesToPlainStrings(render.RenderEntry(e, e.Items(), opts)), "\n")
	if err := m.copy(text); err != nil {
		m.log.WithError(err).Warn("clipboard copy failed")
		m.session.Announce("clipboard unavailable: " + err.Error())
	} else {
		m.session.Announce("copied to clipboard")
	}
	m.follow = true
	m.refreshTranscript()
	return m.trackNewEntries()
}

func (m *Model) syncInput() {
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	promptWidth := runewidth.StringWidth(render.PromptText(m.prompt))
	m.input.Width = max(width-promptWidth-1, 1)
	// 标题栏一行，提示符一行。
	m.viewport.Resize(width, max(height-2, 1))
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.transcriptDirty = true
}

func (m *Model) flushTranscript() {
	if !m.transcriptDirty {
		return
	}
	lines := m.renderTranscriptLines()
	m.transcriptDirty = false
	if m.follow {
		m.viewport.Follow(lines)
		m.follow = false
		return
	}
	m.viewport.SetLines(lines)
}

func (m *Model) renderTranscriptLines() []string {
	opts := render.Options{Width: m.viewport.Width, Theme: m.theme, Prompt: m.prompt}
	return render.LinesToStrings(render.RenderTranscript(m.session.Transcript(), m.visible, opts))
}

func (m *Model) handleScrollKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyPgUp:
		m.viewport.PageUp()
		return nil, true
	case tea.KeyPgDown:
		m.viewport.PageDown()
		return nil, true
	case tea.KeyHome:
		m.viewport.GotoTop()
		return nil, true
	case tea.KeyEnd:
		m.viewport.GotoBottom()
		return nil, true
	case tea.KeyUp, tea.KeyDown:
		if msg.Alt {
			if msg.Type == tea.KeyUp {
				m.viewport.ScrollUp(1)
			} else {
				m.viewport.ScrollDown(1)
			}
			return nil, true
		}
	}
	return nil, false
}
