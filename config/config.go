package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"pastel-todo/model"
	"pastel-todo/store"
)

const DefaultConfigFileName = "config.toml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	TasksFile     string `toml:"tasks_file"`
	DefaultFolder string `toml:"default_folder"`
	LogFile       string `toml:"log_file"`
}

// DefaultPath returns <user config dir>/pastel_todo/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, store.AppDirName, DefaultConfigFileName), nil
}

// LoadOrCreate reads the config at path, writing the defaults there first
// when the file does not exist.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	cfg.DefaultFolder = strings.TrimSpace(cfg.DefaultFolder)
	if cfg.DefaultFolder == "" {
		cfg.DefaultFolder = model.DefaultFolder
	}
	return cfg, nil
}

// TasksPath returns the task file, falling back to the per-user default.
func (c Config) TasksPath() (string, error) {
	if p := strings.TrimSpace(c.TasksFile); p != "" {
		return expandHome(p)
	}
	return store.DefaultPath()
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DefaultFolder: model.DefaultFolder,
	}
}
