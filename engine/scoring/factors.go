package scoring

import (
	"strings"
	"time"
)

// TaskInput is the wire shape of a task submitted for analysis. Pointer
// fields keep "absent" distinguishable from zero so the lenient defaults
// match what clients omit.
type TaskInput struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	Importance     *int     `json:"importance"`
	Dependencies   []int    `json:"dependencies"`
}

// ScoredTask is a TaskInput augmented with its priority score and
// explanation.
type ScoredTask struct {
	TaskInput
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// UrgencyScore buckets how close the due date is to today. Missing or
// unparsable dates score a neutral 0.3.
func UrgencyScore(dueDate string, today time.Time) float64 {
	due, err := time.Parse("2006-01-02", strings.TrimSpace(dueDate))
	if dueDate == "" || err != nil {
		return 0.3
	}
	days := daysUntil(today, due)
	switch {
	case days < 0:
		return 1.0 // overdue
	case days == 0:
		return 0.9 // due today
	case days <= 3:
		return 0.8
	case days <= 7:
		return 0.6
	case days <= 14:
		return 0.4
	default:
		return 0.2 // far in future
	}
}

func daysUntil(today, due time.Time) int {
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// EffortScore rewards small tasks. Unknown or non-positive effort scores a
// neutral 0.5.
func EffortScore(estimatedHours *float64) float64 {
	if estimatedHours == nil {
		return 0.5
	}
	h := *estimatedHours
	switch {
	case h <= 0:
		return 0.5
	case h <= 1:
		return 1.0
	case h <= 3:
		return 0.7
	case h <= 6:
		return 0.4
	default:
		return 0.2 // big task
	}
}

// ImportanceScore normalizes importance from 1-10 to 0-1, defaulting a
// missing value to mid-importance and clamping out-of-range input.
func ImportanceScore(importance *int) float64 {
	imp := 5
	if importance != nil {
		imp = *importance
	}
	if imp < 1 {
		imp = 1
	}
	if imp > 10 {
		imp = 10
	}
	return float64(imp) / 10.0
}

// DependencyBonus rewards tasks that other tasks depend on, tiered by how
// many dependents reference them.
func DependencyBonus(tasks []TaskInput) map[int]float64 {
	dependents := make(map[int]int)
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			dependents[dep]++
		}
	}
	bonus := make(map[int]float64, len(tasks))
	for _, t := range tasks {
		n := dependents[t.ID]
		switch {
		case n == 0:
			bonus[t.ID] = 0.0
		case n == 1:
			bonus[t.ID] = 0.3
		case n <= 3:
			bonus[t.ID] = 0.6
		default:
			bonus[t.ID] = 1.0
		}
	}
	return bonus
}
