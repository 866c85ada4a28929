package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, scores and logs.
const AppDir = ".purrfect-leap"

const configFile = "leap.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.purrfect-leap/configs/leap.yaml -> ./configs/leap.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func Load(customPath string) (LeapConfig, error) {
	// Try custom path first
	if customPath != "" {
		customPath, err := ExpandHome(customPath)
		if err != nil {
			return LeapConfig{}, err
		}
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LeapConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return LeapConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultLeapYAML)
	if err != nil {
		return DefaultLeapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults.
func parse(data []byte) (LeapConfig, error) {
	cfg := DefaultLeapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LeapConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
