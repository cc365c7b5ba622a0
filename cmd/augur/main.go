package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	app := &cli.App{
		Name:    "augur",
		Usage:   "Halstead complexity analysis for Swift codebases",
		Version: version,
		Description: `Augur tokenizes Swift source files and computes Halstead software
science metrics: per-file and project-wide volume, difficulty, effort,
and a derived risk score, with directory-level hotspot ranking and
CI-friendly metric thresholds.

The risk score is volume over a fixed calibration constant. It is a
statistical proxy, not a measured defect count.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"AUGUR_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Disable result caching",
			},
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			hotspotsCmd(),
			checkCmd(),
			initCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(exitConfigError)
	}
}
