package models

import "testing"

func TestClassifyRisk_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{0.999999, RiskLow},
		{1.0, RiskModerate},
		{1.999999, RiskModerate},
		{2.0, RiskHigh},
		{4.999999, RiskHigh},
		{5.0, RiskCritical},
		{100, RiskCritical},
	}

	for _, tt := range tests {
		if got := ClassifyRisk(tt.score); got != tt.want {
			t.Errorf("ClassifyRisk(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyDifficulty(t *testing.T) {
	tests := []struct {
		difficulty float64
		want       DifficultyLevel
	}{
		{0, DifficultyLow},
		{25, DifficultyLow}, // exclusive bound
		{25.1, DifficultyModerate},
		{40, DifficultyModerate},
		{40.1, DifficultyHigh},
		{60, DifficultyHigh},
		{60.1, DifficultyVeryHigh},
	}

	for _, tt := range tests {
		if got := ClassifyDifficulty(tt.difficulty); got != tt.want {
			t.Errorf("ClassifyDifficulty(%f) = %s, want %s", tt.difficulty, got, tt.want)
		}
	}
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name      string
		avgRisk   float64
		fileCount int
		want      HealthStatus
	}{
		{"no files", 0, 0, HealthUnknown},
		{"good", 0.5, 10, HealthGood},
		{"fair at moderate cutoff", 1.0, 10, HealthFair},
		{"needs review at high cutoff", 2.0, 10, HealthNeedsReview},
		{"critical at critical cutoff", 5.0, 10, HealthCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyHealth(tt.avgRisk, tt.fileCount); got != tt.want {
				t.Errorf("ClassifyHealth(%f, %d) = %s, want %s", tt.avgRisk, tt.fileCount, got, tt.want)
			}
		})
	}
}

func TestHealthRecommendation(t *testing.T) {
	for _, h := range []HealthStatus{HealthUnknown, HealthGood, HealthFair, HealthNeedsReview, HealthCritical} {
		if h.Recommendation() == "" {
			t.Errorf("Recommendation() for %s is empty", h)
		}
	}
}
