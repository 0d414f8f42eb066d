package task

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultImportance is applied to bulk-imported records without a numeric
// importance value.
const DefaultImportance = 5

// Task is the canonical task shape. IDs are assigned by the Store at
// insertion time. EstimatedHours is nil when the effort is unknown;
// it serializes as JSON null. Dependencies always marshals as an array,
// never null.
type Task struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	Importance     int      `json:"importance"`
	Dependencies   []int    `json:"dependencies"`
}

// ValidationError reports a user-facing reason a manual task entry was
// rejected. Field names match the form field labels.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Input carries the raw text of the five manual-entry form fields.
type Input struct {
	Title          string
	DueDate        string
	EstimatedHours string
	Importance     string
	Dependencies   string
}

// NewTask applies the strict manual-entry policy: title and due date are
// required, estimated hours must parse as a number, and importance must be
// an integer in [1,10]. The first failing field aborts with a
// ValidationError and no task is produced.
func NewTask(in Input) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "is required"}
	}
	dueDate := strings.TrimSpace(in.DueDate)
	if dueDate == "" {
		return Task{}, &ValidationError{Field: "due date", Reason: "is required"}
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(in.EstimatedHours), 64)
	if err != nil {
		return Task{}, &ValidationError{Field: "estimated hours", Reason: "must be a number"}
	}
	importance, err := strconv.Atoi(strings.TrimSpace(in.Importance))
	if err != nil {
		return Task{}, &ValidationError{Field: "importance", Reason: "must be an integer"}
	}
	if importance < 1 || importance > 10 {
		return Task{}, &ValidationError{Field: "importance", Reason: "must be between 1 and 10"}
	}
	return Task{
		Title:          title,
		DueDate:        dueDate,
		EstimatedHours: &hours,
		Importance:     importance,
		Dependencies:   ParseDependencies(in.Dependencies),
	}, nil
}

// ParseDependencies splits a comma-separated list of task ids, trimming each
// piece and silently dropping anything that does not parse as an integer.
// Empty or whitespace-only input yields an empty list.
func ParseDependencies(raw string) []int {
	deps := []int{}
	for _, piece := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(piece))
		if err != nil {
			continue
		}
		deps = append(deps, id)
	}
	return deps
}
