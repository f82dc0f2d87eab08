package lisp

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the optional settings loaded from a YAML file, per
// SPEC_FULL.md §1.3. Every field is optional; a CLI flag the user set
// explicitly overrides the value loaded here.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuationPrompt"`
	MaxStackDepth      int    `yaml:"maxStackDepth"`
	HistoryFile        string `yaml:"historyFile"`
	PrintSExpr         bool   `yaml:"printSExpr"`
}

// DefaultConfig returns the built-in defaults, used when no config
// file is found or supplied.
func DefaultConfig() Config {
	return Config{
		Prompt:             "> ",
		ContinuationPrompt: "... ",
		MaxStackDepth:      100000,
		HistoryFile:        "",
		PrintSExpr:         false,
	}
}

// LoadConfig reads and merges a YAML config file over the defaults.
// path may be empty, in which case $HOME/.golisprc.yaml is tried; if
// neither exists, the defaults are returned unchanged and no error is
// reported, since absence of a config file is not an error
// (SPEC_FULL.md §1.3).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".golisprc.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
