// Package config loads calder tool configuration. It is decoupled from CLI
// concerns so other front ends (editor tooling, tests) can reuse it.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, looked up in the working directory.
const (
	FileName    = "calder.yaml"
	FileNameAlt = "calder.yml"
)

// Default configuration values.
const (
	DefaultMaxDepth = 512
	DefaultOutput   = "tree"
)

// Config holds tool configuration.
type Config struct {
	// MaxDepth bounds expression nesting during parsing.
	MaxDepth int `koanf:"max_depth"`
	// Output selects AST rendering: "tree" or "canonical".
	Output string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// HistoryFile is the REPL history path. Empty disables history.
	HistoryFile string `koanf:"history_file"`
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	switch c.Output {
	case "tree", "canonical":
	default:
		return fmt.Errorf("output must be \"tree\" or \"canonical\", got %q", c.Output)
	}
	return nil
}

// configFileUsed tracks the file the last Load consumed, for verbose output.
var configFileUsed string

// FileUsed returns the config file consumed by the last Load, if any.
func FileUsed() string {
	return configFileUsed
}

// findConfigFile finds the config file to use.
// Priority: explicit path > calder.yaml > calder.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{FileName, FileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"max_depth":    DefaultMaxDepth,
		"output":       DefaultOutput,
		"verbose":      false,
		"history_file": defaultHistoryFile(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: CALDER_MAX_DEPTH -> max_depth
	if err := k.Load(env.Provider("CALDER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CALDER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calder_history")
}
