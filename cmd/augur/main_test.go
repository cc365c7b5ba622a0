package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augur-dev/augur/pkg/models"
)

func TestSortedFiles(t *testing.T) {
	files := []models.FileMetrics{
		{Path: "b.swift", Volume: 100, Difficulty: 5, RiskScore: 0.1},
		{Path: "a.swift", Volume: 300, Difficulty: 2, RiskScore: 0.3},
		{Path: "c.swift", Volume: 200, Difficulty: 8, RiskScore: 0.2},
	}

	paths := func(fs []models.FileMetrics) []string {
		out := make([]string, len(fs))
		for i, f := range fs {
			out[i] = f.Path
		}
		return out
	}

	assert.Equal(t, []string{"a.swift", "c.swift", "b.swift"}, paths(sortedFiles(files, "volume")))
	assert.Equal(t, []string{"c.swift", "b.swift", "a.swift"}, paths(sortedFiles(files, "difficulty")))
	assert.Equal(t, []string{"a.swift", "c.swift", "b.swift"}, paths(sortedFiles(files, "risk")))
	assert.Equal(t, []string{"a.swift", "b.swift", "c.swift"}, paths(sortedFiles(files, "path")))
	// Unknown keys fall back to volume.
	assert.Equal(t, []string{"a.swift", "c.swift", "b.swift"}, paths(sortedFiles(files, "bogus")))
	// Input order is untouched.
	assert.Equal(t, "b.swift", files[0].Path)
}

func TestSortedFiles_TieBreaksByPath(t *testing.T) {
	files := []models.FileMetrics{
		{Path: "z.swift", Volume: 100},
		{Path: "a.swift", Volume: 100},
	}

	sorted := sortedFiles(files, "volume")
	assert.Equal(t, "a.swift", sorted[0].Path)
	assert.Equal(t, "z.swift", sorted[1].Path)
}

func TestMetricsRow(t *testing.T) {
	f := models.NewFileMetrics("a.swift", 4, 8, 16, 32)
	row := metricsRow(f, false)

	require.Len(t, row, 9)
	assert.Equal(t, "a.swift", row[0])
	assert.Equal(t, "12", row[1]) // vocabulary
	assert.Equal(t, "48", row[2]) // length
	assert.Equal(t, "low", row[8])
}

func TestMetricsRow_TotalsHasNoTier(t *testing.T) {
	totals := models.NewFileMetrics(models.TotalsPath, 4, 8, 16, 32)
	row := metricsRow(totals, false)

	assert.Equal(t, models.TotalsPath, row[0])
	assert.Equal(t, "", row[8])
}

func TestTierCell_Uncolored(t *testing.T) {
	assert.Equal(t, "critical", tierCell(models.RiskCritical, false))
	assert.Equal(t, "low", tierCell(models.RiskLow, false))
}

func TestGenerateDefaultConfig(t *testing.T) {
	content, err := generateDefaultConfig()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# Augur configuration"))
	assert.Contains(t, content, "[analysis]")
	assert.Contains(t, content, "[exclude]")
	assert.Contains(t, content, "[cache]")
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "include_tests")
}
