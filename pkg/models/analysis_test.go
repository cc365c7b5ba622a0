package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisCalculateSummary(t *testing.T) {
	a := &Analysis{
		Files: []FileMetrics{
			{Path: "a.swift", Volume: 300, RiskScore: 0.1},
			{Path: "b.swift", Volume: 900, RiskScore: 0.3},
			{Path: "c.swift", Volume: 16500, RiskScore: 5.5},
		},
		Failures: []TokenizationFailure{
			{Path: "broken.swift", Reason: "failed to read file"},
		},
	}
	a.Totals = FileMetrics{Path: TotalsPath, RiskScore: 5.9}

	a.CalculateSummary()

	assert.Equal(t, 3, a.Summary.TotalFiles)
	assert.Equal(t, 1, a.Summary.FailedFiles)
	assert.Equal(t, 1, a.Summary.CriticalFiles)
	assert.Equal(t, 2, a.Summary.LowFiles)
	assert.Equal(t, 16500.0, a.Summary.MaxVolume)
	assert.InDelta(t, 5900.0, a.Summary.MeanVolume, 0.001)
	// Average risk is the totals risk spread over the file count.
	assert.InDelta(t, 5.9/3, a.Summary.AvgRisk, 0.001)
	assert.Equal(t, HealthFair, a.Summary.Health)
}

func TestAnalysisCalculateSummary_Empty(t *testing.T) {
	a := &Analysis{Totals: FileMetrics{Path: TotalsPath}}
	a.CalculateSummary()

	assert.Equal(t, 0, a.Summary.TotalFiles)
	assert.Zero(t, a.Summary.AvgRisk)
	assert.Zero(t, a.Summary.MeanVolume)
	assert.Equal(t, HealthUnknown, a.Summary.Health)
}

func TestHotspotCalculateSummary(t *testing.T) {
	h := &HotspotAnalysis{
		Directories: []DirectoryHotspot{
			{Directory: "Views/", Stats: DirectoryStats{FileCount: 3, AvgRisk: 2.5, CriticalCount: 1, HighCount: 1, LowCount: 1}},
			{Directory: "Utils/", Stats: DirectoryStats{FileCount: 2, AvgRisk: 0.2, LowCount: 2}},
		},
	}

	h.CalculateSummary()

	assert.Equal(t, 2, h.Summary.TotalDirectories)
	assert.Equal(t, 5, h.Summary.TotalFiles)
	assert.Equal(t, 1, h.Summary.CriticalFiles)
	assert.Equal(t, 1, h.Summary.HighFiles)
	assert.Equal(t, 2.5, h.Summary.MaxAvgRisk)
}
