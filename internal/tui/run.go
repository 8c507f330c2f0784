package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 退出时的会话信息。
type Result struct {
	SessionID string
	History   []string
}

// Run 封装 Bubble Tea 入口，阻塞直到用户退出。
func Run(opts Options) (Result, error) {
	programOptions := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if opts.AltScreen {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	program := tea.NewProgram(New(opts), programOptions...)
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{
		SessionID: tuiModel.SessionID(),
		History:   tuiModel.Session().History(),
	}, nil
}
