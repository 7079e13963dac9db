package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves one game's config.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// Files are decoded over the hardcoded defaults, so a partial file only overrides what it names.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := name + ".yaml"

	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadFlappy loads Flappy configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, defaultFlappyYAML, DefaultFlappyConfig)
}

// LoadJumper loads Jumper configuration.
func LoadJumper(customPath string) (JumperConfig, error) {
	return load("jumper", customPath, defaultJumperYAML, DefaultJumperConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
	if err != nil {
		return cfg, err
	}
	if cfg.Boundary != BoundaryWrap && cfg.Boundary != BoundaryWall {
		return cfg, fmt.Errorf("snake boundary %q: want %s or %s", cfg.Boundary, BoundaryWrap, BoundaryWall)
	}
	return cfg, nil
}

// LoadTicTacToe loads Tic-Tac-Toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	cfg, err := load("tictactoe", customPath, defaultTicTacToeYAML, DefaultTicTacToeConfig)
	if err != nil {
		return cfg, err
	}
	if cfg.Mode != ModeCPU && cfg.Mode != ModePvP {
		return cfg, fmt.Errorf("tictactoe mode %q: want %s or %s", cfg.Mode, ModeCPU, ModePvP)
	}
	return cfg, nil
}
