package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/augur-dev/augur/pkg/models"
)

func TestDirectoryKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		// Absolute paths group by the containing directory.
		{"/Users/dev/App/Views/Login.swift", "Views/"},
		{"/App/main.swift", "App/"},
		{"/main.swift", "."},
		// Relative paths group by the top-level directory.
		{"App/Views/Login.swift", "App/"},
		{"Sources/main.swift", "Sources/"},
		{"main.swift", "."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DirectoryKey(tt.path); got != tt.want {
				t.Errorf("DirectoryKey(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func fileWithRisk(path string, risk float64) models.FileMetrics {
	return models.FileMetrics{Path: path, RiskScore: risk}
}

func TestRankHotspots(t *testing.T) {
	files := []models.FileMetrics{
		fileWithRisk("Views/Login.swift", 6.0),  // critical
		fileWithRisk("Views/Signup.swift", 0.5), // low
		fileWithRisk("Models/User.swift", 2.5),  // high
		fileWithRisk("Models/Post.swift", 2.1),  // high
		fileWithRisk("Utils/Format.swift", 0.2), // low
	}

	analysis := RankHotspots(files)

	assert.Len(t, analysis.Directories, 3)
	// One critical file beats two high files.
	assert.Equal(t, "Views/", analysis.Directories[0].Directory)
	assert.Equal(t, "Models/", analysis.Directories[1].Directory)
	assert.Equal(t, "Utils/", analysis.Directories[2].Directory)

	views := analysis.Directories[0].Stats
	assert.Equal(t, 2, views.FileCount)
	assert.Equal(t, 1, views.CriticalCount)
	assert.Equal(t, 1, views.LowCount)
	assert.InDelta(t, 3.25, views.AvgRisk, 0.001)

	assert.Equal(t, 3, analysis.Summary.TotalDirectories)
	assert.Equal(t, 1, analysis.Summary.CriticalFiles)
	assert.Equal(t, 2, analysis.Summary.HighFiles)
}

func TestRankHotspots_AvgRiskTieBreak(t *testing.T) {
	// Identical bucket counts: higher average risk ranks first.
	files := []models.FileMetrics{
		fileWithRisk("Alpha/a.swift", 0.9),
		fileWithRisk("Beta/b.swift", 0.3),
	}

	analysis := RankHotspots(files)

	assert.Equal(t, "Alpha/", analysis.Directories[0].Directory)
	assert.Equal(t, "Beta/", analysis.Directories[1].Directory)
}

func TestRankHotspots_NameTieBreak(t *testing.T) {
	// Fully identical stats: directory name ascending keeps the order
	// deterministic.
	files := []models.FileMetrics{
		fileWithRisk("Zeta/a.swift", 0.5),
		fileWithRisk("Alpha/b.swift", 0.5),
	}

	analysis := RankHotspots(files)

	assert.Equal(t, "Alpha/", analysis.Directories[0].Directory)
	assert.Equal(t, "Zeta/", analysis.Directories[1].Directory)
}

func TestRankHotspots_Empty(t *testing.T) {
	analysis := RankHotspots(nil)

	assert.Empty(t, analysis.Directories)
	assert.Equal(t, 0, analysis.Summary.TotalDirectories)
}
