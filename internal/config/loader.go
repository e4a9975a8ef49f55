package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user data directory under $HOME.
const DirName = ".rpsls"

// LoadRPSLS loads the game configuration.
// Search order: customPath -> ~/.rpsls/configs/rpsls.yaml -> ./configs/rpsls.yaml -> embedded default.
// Only an explicit customPath produces an error; the other locations are best-effort.
func LoadRPSLS(customPath string) (RPSLSConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultRPSLSConfig(), err
		}
		return cfg, nil
	}

	if p := userConfigPath("rpsls.yaml"); p != "" {
		if cfg, err := loadFile(p); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "rpsls.yaml")); err == nil {
		return cfg, nil
	}

	cfg, err := parse(defaultRPSLSYAML)
	if err != nil {
		return DefaultRPSLSConfig(), nil
	}
	return cfg, nil
}

func loadFile(path string) (RPSLSConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RPSLSConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return RPSLSConfig{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults so omitted keys keep their default value.
func parse(data []byte) (RPSLSConfig, error) {
	cfg := DefaultRPSLSConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or "" if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName, "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
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
