package repl

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"termfolio/internal/logger"
	"termfolio/internal/reveal"
	"termfolio/internal/session"
	"termfolio/internal/tui/render"
)

const clearScreen = "\x1b[H\x1b[2J"

// Options 配置行模式会话。
type Options struct {
	Session *session.Session
	In      io.Reader
	Out     io.Writer
	Width   int
	Theme   render.Theme
	Prompt  render.Prompt
	Animate bool
	// Interactive 为真时输出提示符并依赖终端回显；为假时（管道输入）
	// 将命令行本身写入输出，并且 clear 不发送清屏序列。
	Interactive bool
	Logger      *logger.LogEntry
}

// REPL 以逐行读写的方式驱动会话，用于非终端输入或 --plain。
type REPL struct {
	session    *session.Session
	in         io.Reader
	scrollback *Scrollback
	opts       render.Options
	animate    bool
	interact   bool
	log        *logger.LogEntry
	lastID     int
}

func New(opts Options) *REPL {
	sess := opts.Session
	if sess == nil {
		sess = session.New(session.Options{})
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	prompt := opts.Prompt
	if prompt == (render.Prompt{}) {
		prompt = render.DefaultPrompt()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("repl")
	}
	sb := NewScrollback(ScrollbackOptions{Writer: opts.Out, Width: opts.Width})
	return &REPL{
		session:    sess,
		in:         in,
		scrollback: sb,
		opts:       render.Options{Width: sb.Width(), Theme: opts.Theme, Prompt: prompt},
		animate:    opts.Animate,
		interact:   opts.Interactive,
		log:        log,
	}
}

// Run 输出介绍内容后逐行读取命令，直到输入结束或 ctx 取消。
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	r.log.WithField("session", r.session.ID()).Info("line session started")
	if err := r.flush(ctx); err != nil {
		return err
	}
	for {
		if r.interact {
			if err := r.scrollback.WriteString(render.PromptText(r.opts.Prompt)); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if err := r.handle(ctx, line); err != nil {
				return err
			}
		}
	}
}

func (r *REPL) handle(ctx context.Context, line string) error {
	r.session.SetInput(line)
	eff := r.session.Submit(line)
	r.log.WithField("command", line).WithField("effect", eff.Kind).Debug("command submitted")

	switch eff.Kind {
	case session.EffectClear:
		if r.interact {
			if err := r.scrollback.WriteString(clearScreen); err != nil {
				return err
			}
		}
		return r.flush(ctx)
	case session.EffectReload:
		if err := r.flush(ctx); err != nil {
			return err
		}
		if err := sleep(ctx, eff.Delay); err != nil {
			return err
		}
		r.session.Restart()
		r.log.WithField("session", r.session.ID()).Info("line session restarted")
		if r.interact {
			if err := r.scrollback.WriteString(clearScreen); err != nil {
				return err
			}
		}
		return r.flush(ctx)
	default:
		return r.flush(ctx)
	}
}

// flush 写出尚未输出的条目；需要动画的条目按其速度逐项写出。
func (r *REPL) flush(ctx context.Context) error {
	for _, e := range r.session.Since(r.lastID) {
		r.lastID = max(r.lastID, e.ID)
		if e.Kind == session.KindCommand && r.interact {
			continue
		}
		if err := r.writeEntry(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *REPL) writeEntry(ctx context.Context, e session.Entry) error {
	if e.Kind == session.KindCommand {
		if err := r.scrollback.AppendLines([]render.Line{{}}); err != nil {
			return err
		}
	}
	if !r.animate || !e.Animated() {
		return r.scrollback.AppendLines(render.RenderEntry(e, e.Items(), r.opts))
	}
	engine := reveal.New(e.Items(), e.Speed, func(visible int) {
		_ = r.scrollback.AppendLines(render.RenderContentLine(e.Lines[visible-1], r.opts.Theme, r.opts.Width))
	})
	if err := reveal.Run(ctx, engine); err != nil {
		return err
	}
	return r.scrollback.Err()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
