package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/augur-dev/augur/internal/analyzer"
	"github.com/augur-dev/augur/internal/cache"
	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/internal/scanner"
	"github.com/augur-dev/augur/pkg/config"
)

// Process exit statuses. Threshold violations are a distinct outcome
// from configuration errors so CI can tell "checks failed" apart from
// "could not run at all".
const (
	exitViolations  = 1
	exitConfigError = 2
)

// getPaths returns paths from positional args, defaulting to ["."].
func getPaths(c *cli.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return []string{"."}
}

// loadConfig resolves the --config flag or searches standard locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}

// scanFiles discovers source files under the given roots.
func scanFiles(cfg *config.Config, paths []string) ([]string, error) {
	scan := scanner.NewScanner(cfg)
	files, err := scan.ScanPaths(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	return files, nil
}

// newAnalyzer builds the engine with cache and worker settings applied.
func newAnalyzer(c *cli.Context, cfg *config.Config) (*analyzer.Analyzer, error) {
	enabled := cfg.Cache.Enabled && !c.Bool("no-cache")
	resultCache, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return analyzer.New(
		analyzer.WithCache(resultCache),
		analyzer.WithWorkers(cfg.Analysis.Workers),
	), nil
}

// newFormatter builds the output formatter from the global flags.
func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	format := c.String("format")
	if !c.IsSet("format") && cfg.Output.Format != "" {
		format = cfg.Output.Format
	}
	return output.NewFormatter(output.ParseFormat(format), c.String("output"), cfg.Output.Color)
}
