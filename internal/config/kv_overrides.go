package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// Malformed entries and values that fail to parse are skipped.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "profile.user", "user":
			cfg.Profile.User = val
		case "profile.host", "host":
			cfg.Profile.Host = val
		case "profile.path", "path":
			cfg.Profile.Path = val
		case "content":
			cfg.Content = val
		case "reveal.animate":
			setBool(&cfg.Reveal.Animate, val)
		case "reveal.suggest":
			setBool(&cfg.Reveal.Suggest, val)
		case "reveal.speed_ms":
			setInt(&cfg.Reveal.SpeedMS, val)
		case "reveal.reload_delay_ms":
			setInt(&cfg.Reveal.ReloadDelayMS, val)
		case "log.level":
			cfg.Log.Level = val
		case "log.file":
			cfg.Log.File = val
		case "server.addr":
			cfg.Server.Addr = val
		case "server.static":
			cfg.Server.Static = val
		case "theme.background":
			cfg.Theme.Background = val
		case "theme.text":
			cfg.Theme.Text = val
		case "theme.keyword":
			cfg.Theme.Keyword = val
		case "theme.name":
			cfg.Theme.Name = val
		case "theme.highlight":
			cfg.Theme.Highlight = val
		case "theme.comment":
			cfg.Theme.Comment = val
		case "theme.border":
			cfg.Theme.Border = val
		}
	}
	return cfg
}

func setBool(dst *bool, val string) {
	if b, err := strconv.ParseBool(val); err == nil {
		*dst = b
	}
}

func setInt(dst *int, val string) {
	if n, err := strconv.Atoi(val); err == nil && n >= 0 {
		*dst = n
	}
}
