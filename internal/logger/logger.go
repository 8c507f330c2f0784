package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger/LogEntry/Fields 暴露底层类型，避免调用方直接依赖 logrus 包。
type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

// DefaultLogPath 默认日志文件路径。
const DefaultLogPath = "logs/termfolio.log"

var rootLogger = logrus.StandardLogger()

// Configure 设置全局日志格式与 caller 输出。
func Configure() {
	root().SetReportCaller(true)
	root().SetFormatter(PlainFormatter{})
}

// SetupFile 将全局日志输出重定向到指定路径（默认 logs/termfolio.log）。
// 返回底层文件的 closer 以便调用方清理。
func SetupFile(logPath string) (io.Closer, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	f, resolved, err := openLogFile(logPath)
	if err != nil {
		return nil, "", err
	}
	root().SetOutput(f)
	return f, resolved, nil
}

// SetLevel 按名称设置全局日志级别（debug/info/warn/error），空串保持不变。
func SetLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	root().SetLevel(lvl)
	return nil
}

// Root 返回全局共享的 logger。
func Root() *Logger {
	return root()
}

// SetRoot 覆盖全局 logger，传入 nil 时重置为标准 logger。
func SetRoot(l *Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	rootLogger = l
}

// Entry 返回未附加字段的全局入口。
func Entry() *LogEntry {
	return logrus.NewEntry(root())
}

// Named 为指定组件创建入口，统一 component 字段。
func Named(component string) *LogEntry {
	entry := Entry()
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

// WithSession 在组件入口上附加会话标识。
func WithSession(entry *LogEntry, sessionID string) *LogEntry {
	if entry == nil {
		entry = Entry()
	}
	return entry.WithField("session", sessionID)
}

// Infof 输出格式化 Info 日志。
func Infof(format string, args ...any) {
	root().Infof(format, args...)
}

// Warnf 输出格式化 Warn 日志。
func Warnf(format string, args ...any) {
	root().Warnf(format, args...)
}

func root() *logrus.Logger {
	if rootLogger == nil {
		rootLogger = logrus.StandardLogger()
	}
	return rootLogger
}

// PlainFormatter 统一输出格式：caller [timestamp] [LEVEL] [component] [session] message fields。
type PlainFormatter struct{}

// Format 实现 logrus Formatter。
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	timestamp := entry.Time.UTC().Format(time.RFC3339Nano)
	level := strings.ToUpper(entry.Level.String())
	component := ""
	if val, ok := entry.Data["component"].(string); ok && val != "" {
		component = val
	}
	caller := formatCaller(entry)
	fields := formatFields(entry.Data)

	parts := make([]string, 0, 6)
	if caller != "" {
		parts = append(parts, caller)
	}
	parts = append(parts, fmt.Sprintf("[%s]", timestamp))
	parts = append(parts, fmt.Sprintf("[%s]", level))
	if component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	if sid, ok := entry.Data["session"].(string); ok && sid != "" {
		parts = append(parts, fmt.Sprintf("[session=%s]", shortID(sid)))
	}
	parts = append(parts, entry.Message)
	if fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatCaller(entry *logrus.Entry) string {
	if entry == nil {
		return ""
	}
	if entry.HasCaller() && entry.Caller != nil {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	if caller, ok := entry.Data["caller"].(string); ok && caller != "" {
		return caller
	}
	return ""
}

func formatFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" || k == "caller" || k == "session" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	if idx := strings.Index(file, "/internal/"); idx != -1 {
		return file[idx+1:]
	}
	if idx := strings.Index(file, "/cmd/"); idx != -1 {
		return file[idx+1:]
	}
	if idx := strings.Index(file, "/termfolio/"); idx != -1 {
		return file[idx+len("/termfolio/"):]
	}
	return filepath.Base(file)
}

// shortID 截取会话 UUID 的首段。
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func openLogFile(logPath string) (*os.File, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", err
	}
	return f, logPath, nil
}
