package session

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Complete 为 Tab 补全返回候选命令：唯一前缀匹配优先，
// 多个前缀匹配时返回公共前缀，否则取模糊匹配得分最高者。
func Complete(input string) (string, bool) {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" {
		return "", false
	}
	names := CommandNames()
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], true
	case 0:
		found := fuzzy.Find(prefix, names)
		if len(found) == 0 {
			return "", false
		}
		return found[0].Str, true
	}
	common := commonPrefix(matches)
	if len(common) > len(prefix) {
		return common, true
	}
	return "", false
}

// Suggest 为未知命令给出最接近的已知命令。
func Suggest(input string) (string, bool) {
	pattern := strings.ToLower(strings.TrimSpace(input))
	if pattern == "" {
		return "", false
	}
	found := fuzzy.Find(pattern, CommandNames())
	if len(found) == 0 {
		return "", false
	}
	return found[0].Str, true
}

func commonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	prefix := items[0]
	for _, s := range items[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
