package session

import "strings"

// History 保存已提交的命令，并维护上下箭头的浏览游标。
// cursor == -1 表示未在浏览历史。
type History struct {
	entries []string
	cursor  int
}

// NewHistory 返回空的历史记录。
func NewHistory() *History {
	return &History{cursor: -1}
}

// Add 追加一条去除首尾空白后的非空命令，并重置游标。
func (h *History) Add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	h.entries = append(h.entries, text)
	h.cursor = -1
}

// Entries 返回历史记录的副本，按提交顺序排列。
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) Len() int { return len(h.entries) }

// Cursor 返回当前游标，-1 表示未浏览。
func (h *History) Cursor() int { return h.cursor }

func (h *History) Browsing() bool { return h.cursor != -1 }

func (h *History) Reset() {
	h.cursor = -1
}

// Prev 向更早的记录移动。已在最早一条时不移动，返回 false。
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	default:
		return "", false
	}
	return h.entries[h.cursor], true
}

// Next 向更新的记录移动；越过最新一条时游标回到 -1 并返回空串。
// 未浏览时不移动，返回 false。
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = -1
	return "", true
}
