package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/augur-dev/augur/internal/analyzer"
	"github.com/augur-dev/augur/internal/output"
	"github.com/augur-dev/augur/internal/progress"
)

func hotspotsCmd() *cli.Command {
	return &cli.Command{
		Name:      "hotspots",
		Aliases:   []string{"hs"},
		Usage:     "Rank directories by concentration of high-risk files",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "top",
				Usage: "Show only the N highest ranked directories",
			},
			&cli.BoolFlag{
				Name:  "include-tests",
				Usage: "Include test files in analysis",
			},
		},
		Action: runHotspots,
	}
}

func runHotspots(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.Bool("include-tests") {
		cfg.Analysis.IncludeTests = true
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

	hotspots := analyzer.RankHotspots(analysis.Files)

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	directories := hotspots.Directories
	if top := c.Int("top"); top > 0 && top < len(directories) {
		directories = directories[:top]
	}

	colored := formatter.Format() == output.FormatText
	rows := make([][]string, 0, len(directories))
	for _, d := range directories {
		critical := fmt.Sprintf("%d", d.Stats.CriticalCount)
		if colored && d.Stats.CriticalCount > 0 {
			critical = color.RedString("%d", d.Stats.CriticalCount)
		}
		rows = append(rows, []string{
			d.Directory,
			fmt.Sprintf("%d", d.Stats.FileCount),
			critical,
			fmt.Sprintf("%d", d.Stats.HighCount),
			fmt.Sprintf("%d", d.Stats.ModerateCount),
			fmt.Sprintf("%d", d.Stats.LowCount),
			fmt.Sprintf("%.2f", d.Stats.AvgRisk),
		})
	}

	table := output.NewTable(
		"Architecture Hotspots",
		[]string{"Directory", "Files", "Critical", "High", "Moderate", "Low", "Avg Risk"},
		rows,
		[]string{
			fmt.Sprintf("Directories: %d", hotspots.Summary.TotalDirectories),
			fmt.Sprintf("Critical files: %d", hotspots.Summary.CriticalFiles),
			fmt.Sprintf("High files: %d", hotspots.Summary.HighFiles),
		},
		hotspots,
	)

	return formatter.Output(table)
}
