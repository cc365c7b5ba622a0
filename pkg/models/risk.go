package models

// RiskLevel buckets a file's risk score into an ordered qualitative tier.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Risk score cut points, lower bound inclusive. The same three values
// separate per-file risk tiers, project health states, and the hotspot
// ranker's tier counts, so they live here and nowhere else.
const (
	RiskModerateCutoff = 1.0
	RiskHighCutoff     = 2.0
	RiskCriticalCutoff = 5.0
)

// ClassifyRisk maps a risk score to its tier.
func ClassifyRisk(score float64) RiskLevel {
	switch {
	case score >= RiskCriticalCutoff:
		return RiskCritical
	case score >= RiskHighCutoff:
		return RiskHigh
	case score >= RiskModerateCutoff:
		return RiskModerate
	default:
		return RiskLow
	}
}

// DifficultyLevel is a qualitative label for the Halstead difficulty
// measure. Presentation-only, on its own scale.
type DifficultyLevel string

const (
	DifficultyLow      DifficultyLevel = "low"
	DifficultyModerate DifficultyLevel = "moderate"
	DifficultyHigh     DifficultyLevel = "high"
	DifficultyVeryHigh DifficultyLevel = "veryHigh"
)

// Difficulty cut points, exclusive lower bounds.
const (
	DifficultyModerateCutoff = 25.0
	DifficultyHighCutoff     = 40.0
	DifficultyVeryHighCutoff = 60.0
)

// ClassifyDifficulty maps a difficulty value to its label.
func ClassifyDifficulty(difficulty float64) DifficultyLevel {
	switch {
	case difficulty > DifficultyVeryHighCutoff:
		return DifficultyVeryHigh
	case difficulty > DifficultyHighCutoff:
		return DifficultyHigh
	case difficulty > DifficultyModerateCutoff:
		return DifficultyModerate
	default:
		return DifficultyLow
	}
}

// HealthStatus is the project-wide verdict derived from the average risk
// score over all analyzed files.
type HealthStatus string

const (
	HealthUnknown     HealthStatus = "unknown" // zero files analyzed
	HealthGood        HealthStatus = "good"
	HealthFair        HealthStatus = "fair"
	HealthNeedsReview HealthStatus = "needsReview"
	HealthCritical    HealthStatus = "critical"
)

// ClassifyHealth maps the project average risk to a health status.
// The boundaries are the shared risk cut points above.
func ClassifyHealth(avgRisk float64, fileCount int) HealthStatus {
	if fileCount == 0 {
		return HealthUnknown
	}
	switch {
	case avgRisk < RiskModerateCutoff:
		return HealthGood
	case avgRisk < RiskHighCutoff:
		return HealthFair
	case avgRisk < RiskCriticalCutoff:
		return HealthNeedsReview
	default:
		return HealthCritical
	}
}

// Recommendation returns advisory text for a health status. The text is
// derived purely from the bucket and carries no additional signal.
func (h HealthStatus) Recommendation() string {
	switch h {
	case HealthGood:
		return "Codebase volume is well distributed. No action needed."
	case HealthFair:
		return "A few files are accumulating volume. Consider splitting the largest ones."
	case HealthNeedsReview:
		return "Several files exceed comfortable volume. Schedule refactoring for the top offenders."
	case HealthCritical:
		return "High-volume files dominate the codebase. Prioritize decomposition before adding features."
	default:
		return "No source files analyzed."
	}
}
