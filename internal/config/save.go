package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = "# termfolio configuration. Environment variables and -c key=value override these values.\n\n"

// Save 写入配置文件（权限 0600），返回实际写入的路径。
func Save(path string, cfg Config) (string, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return "", errors.New("config path is empty and $HOME is not set")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Marshal 将配置编码为带注释头的 TOML。
func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return append([]byte(fileHeader), data...), nil
}
