package repl

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth 返回文件所连终端的列数；非终端或查询失败时返回 fallback。
func TerminalWidth(f *os.File, fallback int) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// IsTerminal 判断文件是否连接到终端。
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
