/*
PURPOSE:
  Defines the configuration structure and loading logic for Scroll Runner.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the seed packet path, fragment directory,
    output directories, env file, and model name.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - All content paths are resolved relative to a base directory so the
    persisted record can store project-relative paths.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine, internal/prompt, internal/output
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults (not an error).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults mirror the canonical invocation layout (seed_packets/, motd_fragments/,
    scrolls/, logs/, .env, gpt-4o).

USAGE:
  cfg, err := config.Load("scroll_runner.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for Scroll Runner.
type Config struct {
	// BaseDir is the project root; every other path is relative to it.
	BaseDir      string `yaml:"base_dir"`
	SeedPacket   string `yaml:"seed_packet"`
	FragmentsDir string `yaml:"fragments_dir"`
	// FragmentExt filters which files in FragmentsDir count as fragments.
	FragmentExt string `yaml:"fragment_ext"`
	ScrollsDir  string `yaml:"scrolls_dir"`
	LogsDir     string `yaml:"logs_dir"`
	EnvFile     string `yaml:"env_file"`
	Model       string `yaml:"model"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseDir:      ".",
		SeedPacket:   filepath.Join("seed_packets", "SolariaSeedPacket_∞.20_SacredMomentEdition.md"),
		FragmentsDir: "motd_fragments",
		FragmentExt:  ".md",
		ScrollsDir:   "scrolls",
		LogsDir:      "logs",
		EnvFile:      ".env",
		Model:        "gpt-4o",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"scroll_runner.yaml", "runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// SeedPath returns the absolute-ish seed packet path rooted at BaseDir.
func (c *Config) SeedPath() string {
	return filepath.Join(c.BaseDir, c.SeedPacket)
}

// FragmentsPath returns the fragment directory rooted at BaseDir.
func (c *Config) FragmentsPath() string {
	return filepath.Join(c.BaseDir, c.FragmentsDir)
}

// ScrollsPath returns the scroll output directory rooted at BaseDir.
func (c *Config) ScrollsPath() string {
	return filepath.Join(c.BaseDir, c.ScrollsDir)
}

// LogsPath returns the metadata record directory rooted at BaseDir.
func (c *Config) LogsPath() string {
	return filepath.Join(c.BaseDir, c.LogsDir)
}

// EnvPath returns the credential store path rooted at BaseDir.
func (c *Config) EnvPath() string {
	return filepath.Join(c.BaseDir, c.EnvFile)
}
