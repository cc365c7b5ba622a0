package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/internal/progress"
	"github.com/augur-dev/augur/internal/threshold"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"ci"},
		Usage:     "Evaluate metric thresholds and fail on violations",
		ArgsUsage: "[path...]",
		Description: `Checks every file and the project totals against threshold
expressions of the form <metric><comparator><number>, for example:

   augur check --threshold "volume>=800" --threshold "difficulty<40"

Exit status is 0 when all checks pass, 1 when violations are found,
and 2 when the run itself could not be configured.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Threshold expression (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "include-tests",
				Usage: "Include test files in analysis",
			},
		},
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("include-tests") {
		cfg.Analysis.IncludeTests = true
	}

	exprs := append(append([]string{}, cfg.Analysis.Thresholds...), c.StringSlice("threshold")...)
	if len(exprs) == 0 {
		return cli.Exit("no thresholds given (use --threshold or the config thresholds list)", exitConfigError)
	}

	// Bad threshold syntax or an unknown metric is fatal: thresholds
	// gate the exit status and cannot be silently dropped.
	thresholds, err := threshold.ParseAll(exprs)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), exitConfigError)
	}

	files, err := scanFiles(cfg, getPaths(c))
	if err != nil {
		return err
	}

	eng, err := newAnalyzer(c, cfg)
	if err != nil {
		return err
	}

	tracker := progress.NewTracker("Analyzing...", len(files))
	analysis := eng.AnalyzeProjectWithProgress(files, tracker.Tick)
	tracker.Finish()

	violations := threshold.Evaluate(analysis.Files, analysis.Totals, thresholds)

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(violations) == 0 {
		if formatter.Format() == output.FormatText {
			color.Green("All %d checks passed across %d files", len(thresholds), len(analysis.Files))
			return nil
		}
		return formatter.Output(violations)
	}

	rows := make([][]string, 0, len(violations))
	for _, v := range violations {
		rows = append(rows, []string{
			v.Path,
			v.Metric,
			fmt.Sprintf("%.2f", v.Actual),
			fmt.Sprintf("%s%g", v.Comparator, v.Threshold),
		})
	}

	table := output.NewTable(
		"Threshold Violations",
		[]string{"File", "Metric", "Actual", "Want"},
		rows,
		[]string{fmt.Sprintf("Violations: %d", len(violations))},
		violations,
	)
	if err := formatter.Output(table); err != nil {
		return err
	}

	return cli.Exit(fmt.Sprintf("%d threshold violations found", len(violations)), exitViolations)
}
