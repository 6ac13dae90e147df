// Package config loads converter configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docx2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config value")
)

// MaxWorkers caps the parallel conversion pool.
const MaxWorkers = 64

// Config holds all configuration for batch conversion.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Media       MediaConfig       `yaml:"media"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
	Pandoc      PandocConfig      `yaml:"pandoc"`
	Workers     int               `yaml:"workers"` // 0 = derived from CPU count
}

// InputConfig defines input discovery options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Recursive  bool   `yaml:"recursive"`  // Descend into subdirectories
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir        string `yaml:"defaultDir"`        // Default output directory (empty = same as source)
	Overwrite         bool   `yaml:"overwrite"`         // Replace existing .md files
	PreserveStructure bool   `yaml:"preserveStructure"` // Mirror the input directory tree
}

// MediaConfig defines embedded image extraction options.
type MediaConfig struct {
	Dir string `yaml:"dir"` // Media output directory (empty = alongside output, per document)
}

// FrontMatterConfig defines YAML front matter options.
type FrontMatterConfig struct {
	Disabled bool     `yaml:"disabled"`
	Fields   []string `yaml:"fields"` // Empty = default field set
}

// PandocConfig defines the external converter options.
type PandocConfig struct {
	Path   string `yaml:"path"`   // Explicit pandoc binary (empty = search PATH)
	PureGo bool   `yaml:"pureGo"` // Skip pandoc and use the native backend
}

// Validate checks value ranges. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidConfig, MaxWorkers, c.Workers)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:      OutputConfig{PreserveStructure: true},
		FrontMatter: FrontMatterConfig{Disabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config
// directory under go-docx2md/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-docx2md", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: %q (tried: %s)", ErrConfigNotFound, name, strings.Join(triedPaths, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
