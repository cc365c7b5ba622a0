// Package config loads augur configuration from TOML, YAML, or JSON.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for augur.
type Config struct {
	Analysis AnalysisConfig `koanf:"analysis" toml:"analysis"`
	Exclude  ExcludeConfig  `koanf:"exclude" toml:"exclude"`
	Cache    CacheConfig    `koanf:"cache" toml:"cache"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// AnalysisConfig controls how the metrics run executes.
type AnalysisConfig struct {
	// Workers caps the analysis worker pool. 0 means 2x NumCPU.
	Workers int `koanf:"workers" toml:"workers"`
	// IncludeTests keeps test sources in the corpus.
	IncludeTests bool `koanf:"include_tests" toml:"include_tests"`
	// Thresholds are pass/fail expressions like "volume>=800" applied
	// by `augur check` in addition to any --threshold flags.
	Thresholds []string `koanf:"thresholds" toml:"thresholds"`
}

// ExcludeConfig defines file exclusion policy.
type ExcludeConfig struct {
	Patterns     []string `koanf:"patterns" toml:"patterns"`
	TestPatterns []string `koanf:"test_patterns" toml:"test_patterns"`
	Dirs         []string `koanf:"dirs" toml:"dirs"`
	TestDirs     []string `koanf:"test_dirs" toml:"test_dirs"`
	Gitignore    bool     `koanf:"gitignore" toml:"gitignore"`
}

// CacheConfig controls the per-file result cache.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	Dir     string `koanf:"dir" toml:"dir"`
	TTL     int    `koanf:"ttl" toml:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"` // text, json, markdown
	Color  bool   `koanf:"color" toml:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers:      0,
			IncludeTests: false,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.generated.swift",
			},
			TestPatterns: []string{
				"*Tests.swift",
				"*Test.swift",
			},
			Dirs: []string{
				".git",
				".build",
				".augur",
				"Pods",
				"Carthage",
				"DerivedData",
			},
			TestDirs: []string{
				"Tests",
				"UITests",
			},
			Gitignore: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".augur/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"augur.toml",
		"augur.yaml",
		"augur.yml",
		"augur.json",
		".augur.toml",
		".augur.yaml",
		".augur.yml",
		".augur.json",
	}
	searchDirs := []string{".", ".augur"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				if cfg, err := Load(path); err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}

// ExcludedPatterns returns the active filename patterns, folding in test
// patterns unless tests are included.
func (c *Config) ExcludedPatterns() []string {
	patterns := append([]string{}, c.Exclude.Patterns...)
	if !c.Analysis.IncludeTests {
		patterns = append(patterns, c.Exclude.TestPatterns...)
	}
	return patterns
}

// ExcludedDirs returns the active directory exclusions, folding in test
// directories unless tests are included.
func (c *Config) ExcludedDirs() []string {
	dirs := append([]string{}, c.Exclude.Dirs...)
	if !c.Analysis.IncludeTests {
		dirs = append(dirs, c.Exclude.TestDirs...)
	}
	return dirs
}

// ShouldExclude checks if a path is excluded by directory, or filename
// pattern policy.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.ExcludedDirs() {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.ExcludedPatterns() {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
