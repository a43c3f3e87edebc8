package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.maze-escape/config.yaml -> ./configs/maze.yaml -> embedded default
//
// An explicit customPath must exist, parse and validate. Files found on the
// search path are skipped when they are unreadable or invalid.
func Load(customPath string) (GameConfig, error) {
	return LoadWithSearch(customPath, SearchPaths())
}

// SearchPaths returns the implicit config locations in priority order.
func SearchPaths() []string {
	var paths []string
	if p := userConfigPath("config.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "maze.yaml"))
}

// LoadWithSearch is Load with an explicit search path list.
func LoadWithSearch(customPath string, search []string) (GameConfig, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return GameConfig{}, err
		}
		return cfg, nil
	}

	for _, p := range search {
		if cfg, err := LoadFile(p); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultMazeYAML)
	if err != nil {
		return Default(), nil
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// LoadFile reads, parses and validates one config file.
func LoadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes a YAML document over the hardcoded defaults, so a file only
// needs the sections it changes, then validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	cfg.Source = ""
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze-escape", filename)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
