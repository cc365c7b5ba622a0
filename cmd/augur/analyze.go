package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/internal/progress"
	"github.com/augur-dev/augur/pkg/models"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"an"},
		Usage:     "Compute Halstead metrics per file and for the project",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "top",
				Usage: "Show only the N highest ranked files",
			},
			&cli.StringFlag{
				Name:  "sort",
				Value: "volume",
				Usage: "Sort files by: volume, difficulty, effort, risk, path",
			},
			&cli.BoolFlag{
				Name:  "include-tests",
				Usage: "Include test files in analysis",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Max parallel workers (0 = 2x CPU)",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("include-tests") {
		cfg.Analysis.IncludeTests = true
	}
	if c.IsSet("workers") {
		cfg.Analysis.Workers = c.Int("workers")
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

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	sorted := sortedFiles(analysis.Files, c.String("sort"))
	if top := c.Int("top"); top > 0 && top < len(sorted) {
		sorted = sorted[:top]
	}

	colored := formatter.Format() == output.FormatText
	rows := make([][]string, 0, len(sorted)+1)
	for _, f := range sorted {
		rows = append(rows, metricsRow(f, colored))
	}
	rows = append(rows, metricsRow(analysis.Totals, colored))

	s := analysis.Summary
	table := output.NewTable(
		"Halstead Metrics",
		[]string{"File", "Vocabulary", "Length", "Volume", "Difficulty", "Effort", "Time (s)", "Risk", "Tier"},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", s.TotalFiles),
			fmt.Sprintf("Failed: %d", s.FailedFiles),
			fmt.Sprintf("Avg risk: %.2f", s.AvgRisk),
			fmt.Sprintf("Health: %s", s.Health),
		},
		analysis,
	)

	if err := formatter.Output(table); err != nil {
		return err
	}

	if formatter.Format() == output.FormatText {
		fmt.Println(s.Health.Recommendation())

		if len(analysis.Failures) > 0 {
			fmt.Println()
			color.Yellow("Skipped files (%d):", len(analysis.Failures))
			for _, f := range analysis.Failures {
				fmt.Printf("  - %s: %s\n", f.Path, f.Reason)
			}
		}
	}

	return nil
}

// metricsRow renders one record. The risk tier cell is colored on text
// output; the totals record shows the project health instead of a tier.
func metricsRow(f models.FileMetrics, colored bool) []string {
	var tier string
	if f.Path == models.TotalsPath {
		tier = ""
	} else {
		tier = tierCell(models.ClassifyRisk(f.RiskScore), colored)
	}
	return []string{
		f.Path,
		fmt.Sprintf("%d", f.Vocabulary),
		fmt.Sprintf("%d", f.Length),
		fmt.Sprintf("%.1f", f.Volume),
		fmt.Sprintf("%.1f", f.Difficulty),
		fmt.Sprintf("%.1f", f.Effort),
		fmt.Sprintf("%.1f", f.Time),
		fmt.Sprintf("%.2f", f.RiskScore),
		tier,
	}
}

func tierCell(tier models.RiskLevel, colored bool) string {
	if !colored {
		return string(tier)
	}
	switch tier {
	case models.RiskCritical:
		return color.RedString(string(tier))
	case models.RiskHigh:
		return color.MagentaString(string(tier))
	case models.RiskModerate:
		return color.YellowString(string(tier))
	default:
		return color.GreenString(string(tier))
	}
}

// sortedFiles returns a copy of files ordered by the requested metric,
// descending (path sorts ascending).
func sortedFiles(files []models.FileMetrics, by string) []models.FileMetrics {
	sorted := append([]models.FileMetrics{}, files...)

	var key func(models.FileMetrics) float64
	switch by {
	case "difficulty":
		key = func(f models.FileMetrics) float64 { return f.Difficulty }
	case "effort":
		key = func(f models.FileMetrics) float64 { return f.Effort }
	case "risk":
		key = func(f models.FileMetrics) float64 { return f.RiskScore }
	case "path":
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })
		return sorted
	default:
		key = func(f models.FileMetrics) float64 { return f.Volume }
	}

	sort.Slice(sorted, func(i, j int) bool {
		if key(sorted[i]) != key(sorted[j]) {
			return key(sorted[i]) > key(sorted[j])
		}
		return sorted[i].Path < sorted[j].Path
	})
	return sorted
}
