// Package config loads xref's optional configuration file and supplies
// defaults for everything the command line doesn't override.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/xref/internal/directive"
	"github.com/harrison/xref/internal/walker"
)

// DefaultFile is the config file looked up in the working directory when no
// --config flag is given.
const DefaultFile = ".xref.yaml"

// Config holds all run configuration. Values are resolved in three layers:
// built-in defaults, then the config file, then command-line flags.
type Config struct {
	// Paths are the roots to scan.
	Paths []string `yaml:"paths"`

	// Sigils names the matcher token per directive kind.
	Sigils directive.Sigils `yaml:"sigils"`

	// ExcludeDirs lists directory names skipped during traversal, in
	// addition to dot-directories which are always skipped.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Jobs is the number of scan workers (0 = number of CPUs).
	Jobs int `yaml:"jobs"`

	// LogLevel sets console logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogDir is where per-run log files are written. Empty disables file
	// logging.
	LogDir string `yaml:"log_dir"`

	// FailIfAnyUnused makes list-unused exit non-zero when it finds
	// unreferenced tags.
	FailIfAnyUnused bool `yaml:"fail_if_any_unused"`
}

// DefaultConfig returns a Config with built-in defaults: scan the current
// directory with the standard sigils.
func DefaultConfig() *Config {
	return &Config{
		Paths:       []string{"."},
		Sigils:      directive.DefaultSigils(),
		ExcludeDirs: walker.DefaultExcludeDirs(),
		Jobs:        0,
		LogLevel:    "info",
		LogDir:      "",
	}
}

// LoadConfig loads configuration from the given path, overlaying any values
// present onto the defaults. A missing file is not an error; a malformed
// one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file over the defaults.
	if len(fileCfg.Paths) > 0 {
		cfg.Paths = fileCfg.Paths
	}
	if fileCfg.Sigils.Tag != "" {
		cfg.Sigils.Tag = fileCfg.Sigils.Tag
	}
	if fileCfg.Sigils.Ref != "" {
		cfg.Sigils.Ref = fileCfg.Sigils.Ref
	}
	if fileCfg.Sigils.File != "" {
		cfg.Sigils.File = fileCfg.Sigils.File
	}
	if fileCfg.Sigils.Dir != "" {
		cfg.Sigils.Dir = fileCfg.Sigils.Dir
	}
	if len(fileCfg.ExcludeDirs) > 0 {
		cfg.ExcludeDirs = fileCfg.ExcludeDirs
	}
	if fileCfg.Jobs != 0 {
		cfg.Jobs = fileCfg.Jobs
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.FailIfAnyUnused {
		cfg.FailIfAnyUnused = true
	}

	return cfg, nil
}
