// Package config reads and writes the optional workspace configuration
// file. The file holds per-workspace defaults so agents working in the same
// checkout do not have to repeat --author on every command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/wrk/internal/workspace"
)

// FileName is the configuration file inside the workspace directory.
const FileName = "config.json"

// Config is the workspace configuration. All fields are optional.
type Config struct {
	Version string `json:"version,omitempty"`
	Author  string `json:"author,omitempty"` // default author for new items
	Agent   string `json:"agent,omitempty"`  // default agent name for log entries
}

// Path returns the config file path under root's workspace directory.
func Path(root string) string {
	return filepath.Join(root, workspace.DirName, FileName)
}

// Load reads the config from root's workspace directory. A missing file is
// not an error; it loads as the zero config.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(Path(root))
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to root's workspace directory.
func Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(root), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
