package task

import "strconv"

// ScoredTask is a task augmented by the analysis service with a priority
// score and a human-readable explanation. Instances are created fresh per
// response and never flow back into the Store.
type ScoredTask struct {
	Task
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Band classifies a score for rendering.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// PriorityBand is total over all scores: exactly two comparisons, so
// anything above 1 still lands on high and anything negative on low.
func PriorityBand(score float64) Band {
	if score >= 0.7 {
		return BandHigh
	}
	if score >= 0.5 {
		return BandMedium
	}
	return BandLow
}

// FormatScore renders a score without forcing a fixed precision, tolerating
// whatever number the service returned.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// FormatHours renders estimated hours, or a dash when unknown.
func FormatHours(hours *float64) string {
	if hours == nil {
		return "-"
	}
	return strconv.FormatFloat(*hours, 'f', -1, 64)
}

// FormatImportance renders importance, or a dash when the service omitted
// it. Zero doubles as the absent marker since client-built tasks always
// carry at least 1.
func FormatImportance(importance int) string {
	if importance == 0 {
		return "-"
	}
	return strconv.Itoa(importance)
}
