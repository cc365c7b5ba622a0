package models

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// TokenizationFailure records a file the lexer could not process. Failed
// files are skipped and reported; they never abort the run.
type TokenizationFailure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// AnalysisSummary provides aggregate statistics over a completed run.
type AnalysisSummary struct {
	TotalFiles    int          `json:"total_files"`
	FailedFiles   int          `json:"failed_files"`
	CriticalFiles int          `json:"critical_files"`
	HighFiles     int          `json:"high_files"`
	ModerateFiles int          `json:"moderate_files"`
	LowFiles      int          `json:"low_files"`
	MaxVolume     float64      `json:"max_volume"`
	MeanVolume    float64      `json:"mean_volume"`
	AvgRisk       float64      `json:"avg_risk"`
	Health        HealthStatus `json:"health"`
}

// Analysis is the full result of one metrics run: every per-file record,
// the TOTALS record, and the files that could not be tokenized.
type Analysis struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Files       []FileMetrics         `json:"files"`
	Totals      FileMetrics           `json:"totals"`
	Failures    []TokenizationFailure `json:"failures,omitempty"`
	Summary     AnalysisSummary       `json:"summary"`
}

// CalculateSummary fills in the summary from the per-file records and
// totals. The average risk divides the totals risk score by the file
// count, zero when no files were analyzed.
func (a *Analysis) CalculateSummary() {
	s := AnalysisSummary{
		TotalFiles:  len(a.Files),
		FailedFiles: len(a.Failures),
	}

	volumes := make([]float64, 0, len(a.Files))
	for _, f := range a.Files {
		volumes = append(volumes, f.Volume)
		if f.Volume > s.MaxVolume {
			s.MaxVolume = f.Volume
		}
		switch ClassifyRisk(f.RiskScore) {
		case RiskCritical:
			s.CriticalFiles++
		case RiskHigh:
			s.HighFiles++
		case RiskModerate:
			s.ModerateFiles++
		case RiskLow:
			s.LowFiles++
		}
	}

	if len(volumes) > 0 {
		s.MeanVolume = stat.Mean(volumes, nil)
		s.AvgRisk = a.Totals.RiskScore / float64(len(a.Files))
	}
	s.Health = ClassifyHealth(s.AvgRisk, len(a.Files))

	a.Summary = s
}
