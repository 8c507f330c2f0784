package main

import (
	"fmt"
	"io"
	"os"

	"termfolio/internal/config"
	"termfolio/internal/content"
	"termfolio/internal/logger"
	"termfolio/internal/repl"
	"termfolio/internal/session"
	"termfolio/internal/tui"
	"termfolio/internal/tui/render"

	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions 汇总所有子命令共享的持久化 flag。
type rootOptions struct {
	configPath  string
	overrides   []string
	contentPath string
	logLevel    string
}

// app 是加载完配置、内容与日志后的运行环境。
type app struct {
	cfg     config.Config
	doc     content.Document
	closers []io.Closer
}

func (a *app) Close() {
	logger.Root().SetOutput(os.Stderr)
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func (a *app) prompt() render.Prompt { return render.Prompt(a.cfg.Profile) }

func (a *app) theme() render.Theme { return render.NewTheme(render.Palette(a.cfg.Theme)) }

func (a *app) newSession() *session.Session {
	return session.New(session.Options{
		Content:      a.doc,
		DefaultSpeed: a.cfg.Reveal.Speed(),
		ReloadDelay:  a.cfg.Reveal.ReloadDelay(),
		Suggest:      a.cfg.Reveal.Suggest,
	})
}

// load 依次应用配置文件、环境变量、-c 覆盖与命令行 flag。
func (o *rootOptions) load() (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = config.ApplyKVOverrides(cfg, o.overrides)
	if o.contentPath != "" {
		cfg.Content = o.contentPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	a := &app{cfg: cfg}
	logger.Configure()
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	if f, _, err := logger.SetupFile(cfg.Log.File); err != nil {
		logger.Warnf("failed to initialize log file: %v", err)
	} else {
		a.closers = append(a.closers, f)
	}

	doc, err := content.Load(cfg.Content)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.doc = doc
	return a, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	var plain, noAnimate bool

	cmd := &cobra.Command{
		Use:   "termfolio",
		Short: "Termfolio - a portfolio you browse like a terminal",
		Long: `Termfolio opens an interactive terminal session presenting a personal portfolio.

Type help to list the commands (about, resume, stack, projects, socials,
reload, clear). Responses are revealed line by line. When stdin is not a
terminal, or with --plain, the session runs in line mode.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load()
			if err != nil {
				return err
			}
			defer a.Close()
			if noAnimate {
				a.cfg.Reveal.Animate = false
			}
			return runSession(cmd, a, plain)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.toml (default ~/.termfolio/config.toml)")
	cmd.PersistentFlags().StringArrayVarP(&opts.overrides, "config-override", "c", nil, "Override a config value (key=value), repeatable")
	cmd.PersistentFlags().StringVar(&opts.contentPath, "content", "", "Path to a portfolio content YAML file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Force line mode instead of the full-screen interface")
	cmd.Flags().BoolVar(&noAnimate, "no-animate", false, "Show responses immediately")

	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newConfigCommand(opts))

	return cmd
}

func runSession(cmd *cobra.Command, a *app, plain bool) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	inFile, _ := in.(*os.File)
	outFile, _ := out.(*os.File)
	sess := a.newSession()

	if !plain && repl.IsTerminal(inFile) && repl.IsTerminal(outFile) {
		res, err := tui.Run(tui.Options{
			Session:   sess,
			Prompt:    a.prompt(),
			Theme:     a.theme(),
			Animate:   a.cfg.Reveal.Animate,
			AltScreen: true,
			Logger:    logger.Named("tui"),
		})
		if err != nil {
			return fmt.Errorf("run interface: %w", err)
		}
		logger.Named("tui").WithField("session", res.SessionID).WithField("commands", len(res.History)).Info("interface closed")
		return nil
	}

	theme := render.PlainTheme()
	if repl.IsTerminal(outFile) {
		theme = a.theme()
	}
	r := repl.New(repl.Options{
		Session:     sess,
		In:          in,
		Out:         out,
		Width:       repl.TerminalWidth(outFile, 80),
		Theme:       theme,
		Prompt:      a.prompt(),
		Animate:     a.cfg.Reveal.Animate,
		Interactive: repl.IsTerminal(inFile),
		Logger:      logger.Named("repl"),
	})
	ctx, stop := signalContext(cmd)
	defer stop()
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
