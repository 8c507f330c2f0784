package session

import (
	"sort"

	"termfolio/internal/content"
)

type action int

const (
	actionRespond action = iota
	actionClear
	actionReload
)

// producer 由静态内容生成响应条目（不含 ID）。
type producer func(doc content.Document) Entry

type command struct {
	action  action
	produce producer
}

// Help 为 help 命令列出的命令及说明，顺序固定。
var Help = []HelpItem{
	{Name: "about", Description: "About me & Career transition"},
	{Name: "resume", Description: "Full Curriculum Vitae (CV)"},
	{Name: "stack", Description: "Tech Stack & Tools"},
	{Name: "projects", Description: "Detailed Project Portfolio"},
	{Name: "socials", Description: "Instagram, LinkedIn, GitHub & Phone"},
	{Name: "reload", Description: "Reload the session"},
	{Name: "clear", Description: "Clear terminal"},
}

var commands = map[string]command{
	"help":     {produce: helpResponse},
	"about":    {produce: blockResponse(content.BlockAbout)},
	"resume":   {produce: blockResponse(content.BlockResume)},
	"stack":    {produce: blockResponse(content.BlockStack)},
	"projects": {produce: blockResponse(content.BlockProjects)},
	"socials":  {produce: blockResponse(content.BlockSocials)},
	"clear":    {action: actionClear},
	"reload":   {action: actionReload},
}

// CommandNames 返回所有可识别的命令，按字母序排列。
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known 判断命令（已小写）是否在分发表中。
func Known(name string) bool {
	_, ok := commands[name]
	return ok
}

// Responds 判断命令是否产生普通响应条目，clear 与 reload 不算。
func Responds(name string) bool {
	cmd, ok := commands[name]
	return ok && cmd.action == actionRespond
}

func helpResponse(content.Document) Entry {
	return Entry{Kind: KindHelp, Help: append([]HelpItem(nil), Help...)}
}

func blockResponse(name string) producer {
	return func(doc content.Document) Entry {
		b, _ := doc.Block(name)
		return Entry{Kind: KindCustomLines, Lines: b.Lines, Speed: b.Speed}
	}
}
