package models

import "time"

// DirectoryStats aggregates risk over the files sharing one top-level
// directory key. Stats are recomputed on every ranking run and never
// persisted.
type DirectoryStats struct {
	FileCount     int     `json:"file_count"`
	AvgRisk       float64 `json:"avg_risk"`
	CriticalCount int     `json:"critical_count"`
	HighCount     int     `json:"high_count"`
	ModerateCount int     `json:"moderate_count"`
	LowCount      int     `json:"low_count"`
}

// DirectoryHotspot pairs a directory key with its aggregated stats.
type DirectoryHotspot struct {
	Directory string         `json:"directory"`
	Stats     DirectoryStats `json:"stats"`
}

// HotspotAnalysis is the ordered architecture hotspot ranking: directories
// sorted by concentration of critical and high risk files.
type HotspotAnalysis struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Directories []DirectoryHotspot `json:"directories"`
	Summary     HotspotSummary     `json:"summary"`
}

// HotspotSummary provides aggregate statistics for the ranking.
type HotspotSummary struct {
	TotalDirectories int     `json:"total_directories"`
	TotalFiles       int     `json:"total_files"`
	CriticalFiles    int     `json:"critical_files"`
	HighFiles        int     `json:"high_files"`
	MaxAvgRisk       float64 `json:"max_avg_risk"`
}

// CalculateSummary fills in the summary from the ranked directories.
func (a *HotspotAnalysis) CalculateSummary() {
	a.Summary = HotspotSummary{TotalDirectories: len(a.Directories)}
	for _, d := range a.Directories {
		a.Summary.TotalFiles += d.Stats.FileCount
		a.Summary.CriticalFiles += d.Stats.CriticalCount
		a.Summary.HighFiles += d.Stats.HighCount
		if d.Stats.AvgRisk > a.Summary.MaxAvgRisk {
			a.Summary.MaxAvgRisk = d.Stats.AvgRisk
		}
	}
}
