package analyzer

import (
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/augur-dev/augur/pkg/models"
)

// DirectoryKey derives the hotspot grouping key from a file path.
// Absolute paths group by the directory immediately containing the file;
// relative paths group by their top-level directory. Files without a
// qualifying directory fall into the "." group.
func DirectoryKey(path string) string {
	if strings.HasPrefix(path, "/") {
		segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
		if len(segments) < 2 {
			return "."
		}
		return segments[len(segments)-2] + "/"
	}

	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return "."
	}
	return segments[0] + "/"
}

// RankHotspots groups per-file metrics by directory key and produces the
// priority-ordered architecture hotspot ranking.
func RankHotspots(files []models.FileMetrics) *models.HotspotAnalysis {
	groups := make(map[string][]models.FileMetrics)
	for _, f := range files {
		key := DirectoryKey(f.Path)
		groups[key] = append(groups[key], f)
	}

	analysis := &models.HotspotAnalysis{
		GeneratedAt: time.Now().UTC(),
		Directories: make([]models.DirectoryHotspot, 0, len(groups)),
	}
	for dir, group := range groups {
		analysis.Directories = append(analysis.Directories, models.DirectoryHotspot{
			Directory: dir,
			Stats:     directoryStats(group),
		})
	}

	sort.Slice(analysis.Directories, func(i, j int) bool {
		return hotspotLess(analysis.Directories[i], analysis.Directories[j])
	})

	analysis.CalculateSummary()
	return analysis
}

// directoryStats computes the risk distribution for one group of files.
func directoryStats(group []models.FileMetrics) models.DirectoryStats {
	stats := models.DirectoryStats{FileCount: len(group)}
	if len(group) == 0 {
		return stats
	}

	risks := make([]float64, 0, len(group))
	for _, f := range group {
		risks = append(risks, f.RiskScore)
		switch models.ClassifyRisk(f.RiskScore) {
		case models.RiskCritical:
			stats.CriticalCount++
		case models.RiskHigh:
			stats.HighCount++
		case models.RiskModerate:
			stats.ModerateCount++
		case models.RiskLow:
			stats.LowCount++
		}
	}
	stats.AvgRisk = stat.Mean(risks, nil)

	return stats
}

// hotspotLess orders directories by remediation priority: critical count,
// high count, moderate count, then average risk, all descending. The
// directory name ascending is the final tie break, keeping the order a
// strict total order.
func hotspotLess(a, b models.DirectoryHotspot) bool {
	if a.Stats.CriticalCount != b.Stats.CriticalCount {
		return a.Stats.CriticalCount > b.Stats.CriticalCount
	}
	if a.Stats.HighCount != b.Stats.HighCount {
		return a.Stats.HighCount > b.Stats.HighCount
	}
	if a.Stats.ModerateCount != b.Stats.ModerateCount {
		return a.Stats.ModerateCount > b.Stats.ModerateCount
	}
	if a.Stats.AvgRisk != b.Stats.AvgRisk {
		return a.Stats.AvgRisk > b.Stats.AvgRisk
	}
	return a.Directory < b.Directory
}
