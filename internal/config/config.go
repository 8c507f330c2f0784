package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema.
type Config struct {
	Profile Profile `toml:"profile"`
	// Content 为自定义内容 YAML 路径，为空时使用内置内容。
	Content string `toml:"content"`
	Reveal  Reveal `toml:"reveal"`
	Theme   Theme  `toml:"theme"`
	Log     Log    `toml:"log"`
	Server  Server `toml:"server"`
	Source  string `toml:"-"`
}

// Profile 是提示符 `user@host:path` 中的身份。
type Profile struct {
	User string `toml:"user"`
	Host string `toml:"host"`
	Path string `toml:"path"`
}

// Reveal 控制逐行展示与 reload。
type Reveal struct {
	Animate       bool `toml:"animate"`
	SpeedMS       int  `toml:"speed_ms"`
	ReloadDelayMS int  `toml:"reload_delay_ms"`
	Suggest       bool `toml:"suggest"`
}

// Speed 返回默认展示间隔。
func (r Reveal) Speed() time.Duration {
	return time.Duration(r.SpeedMS) * time.Millisecond
}

// ReloadDelay 返回 reload 到重启之间的延迟。
func (r Reveal) ReloadDelay() time.Duration {
	return time.Duration(r.ReloadDelayMS) * time.Millisecond
}

// Theme 以十六进制颜色覆盖配色，空值使用默认色。
type Theme struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Keyword    string `toml:"keyword"`
	Name       string `toml:"name"`
	Highlight  string `toml:"highlight"`
	Comment    string `toml:"comment"`
	Border     string `toml:"border"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Server struct {
	Addr   string `toml:"addr"`
	Static string `toml:"static"`
}

func Default() Config {
	return Config{
		Profile: Profile{User: "guest", Host: "lucasmori", Path: "~/workspace"},
		Reveal:  Reveal{Animate: true, SpeedMS: 35, ReloadDelayMS: 1000, Suggest: true},
		Log:     Log{Level: "info", File: "logs/termfolio.log"},
		Server:  Server{Addr: ":8080"},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termfolio", "config.toml")
}

// Load 读取 TOML 配置；文件不存在时使用默认值。环境变量最后覆盖。
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	set := func(key string, dst *string) {
		if env := strings.TrimSpace(os.Getenv(key)); env != "" {
			*dst = env
		}
	}
	set("TERMFOLIO_USER", &cfg.Profile.User)
	set("TERMFOLIO_HOST", &cfg.Profile.Host)
	set("TERMFOLIO_PATH", &cfg.Profile.Path)
	set("TERMFOLIO_CONTENT", &cfg.Content)
	set("TERMFOLIO_LOG_LEVEL", &cfg.Log.Level)
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Server.Addr = ":" + port
	}
	return cfg
}
