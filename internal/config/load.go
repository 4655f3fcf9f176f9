package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const configFileName = "oklch16.json"

// Load finds and loads configuration from standard locations.
// It merges the global config with the nearest project config (project
// takes precedence). A missing file is not an error.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(GlobalConfigPath(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cfg, nil
	}
	if projectPath := findProjectConfig(cwd); projectPath != "" {
		projectCfg := NewConfig()
		if err := loadFile(projectPath, projectCfg); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
		mergeConfig(cfg, projectCfg)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file path. Unlike Load,
// the file must exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	//nolint:gosec // G304: Path is from trusted config locations, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.files = append(cfg.files, path)
	return nil
}

func findProjectConfig(start string) string {
	dir := start
	for {
		// Check for oklch16.json.
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		// Check for .oklch16.json (hidden).
		hiddenPath := filepath.Join(dir, "."+configFileName)
		if _, err := os.Stat(hiddenPath); err == nil {
			return hiddenPath
		}

		// Move to parent directory.
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func mergeConfig(dst, src *Config) {
	dst.files = append(dst.files, src.files...)

	if src.Theme != nil {
		if dst.Theme == nil {
			dst.Theme = &Theme{}
		}
		mergeFloat(&dst.Theme.FG, src.Theme.FG)
		mergeFloat(&dst.Theme.BG, src.Theme.BG)
		mergeFloat(&dst.Theme.NL, src.Theme.NL)
		mergeFloat(&dst.Theme.NC, src.Theme.NC)
		mergeFloat(&dst.Theme.NHO, src.Theme.NHO)
		mergeFloat(&dst.Theme.BL, src.Theme.BL)
		mergeFloat(&dst.Theme.BC, src.Theme.BC)
		mergeFloat(&dst.Theme.BHO, src.Theme.BHO)
	}

	if src.Options != nil {
		if dst.Options == nil {
			dst.Options = &Options{}
		}
		if src.Options.Color != "" {
			dst.Options.Color = src.Options.Color
		}
		if src.Options.DataDir != "" {
			dst.Options.DataDir = src.Options.DataDir
		}
		if src.Options.Debug {
			dst.Options.Debug = true
		}
	}
}

func mergeFloat(dst **float32, src *float32) {
	if src != nil {
		*dst = src
	}
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}
