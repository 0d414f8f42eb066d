package task

import (
	"encoding/json"
	"errors"
	"strings"
)

// Bulk import errors, surfaced to the user as-is.
var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotArray    = errors.New("bulk import must be a JSON array of task objects")
)

// RawTask is a bulk-imported record after lenient normalization. Only title
// and due date gate acceptance; everything else is defaulted silently.
type RawTask struct {
	Title          string
	DueDate        string
	EstimatedHours *float64
	Importance     int
	Dependencies   []int
}

func (r RawTask) normalize() Task {
	deps := r.Dependencies
	if deps == nil {
		deps = []int{}
	}
	return Task{
		Title:          r.Title,
		DueDate:        r.DueDate,
		EstimatedHours: r.EstimatedHours,
		Importance:     r.Importance,
		Dependencies:   deps,
	}
}

// ParseBulk is a best-effort batch ingest: it decodes a JSON array of task
// objects and applies the lenient per-record policy. Records missing a title
// or due date are dropped; the skip count is returned so the caller decides
// whether to surface it. A batch where every record is skipped is still a
// success. Input that is not valid JSON or not an array of objects is
// rejected wholesale.
func ParseBulk(data []byte) ([]RawTask, int, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, 0, ErrInvalidJSON
	}
	items, ok := value.([]any)
	if !ok {
		return nil, 0, ErrNotArray
	}
	records := []RawTask{}
	skipped := 0
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, 0, ErrNotArray
		}
		raw, ok := normalizeRecord(obj)
		if !ok {
			skipped++
			continue
		}
		records = append(records, raw)
	}
	return records, skipped, nil
}

// normalizeRecord applies the lenient defaults from the bulk import policy:
// non-numeric estimated_hours stays unknown, non-numeric importance becomes
// DefaultImportance (not range-checked), and a missing dependency array
// becomes empty.
func normalizeRecord(obj map[string]any) (RawTask, bool) {
	title, ok := stringField(obj, "title")
	if !ok {
		return RawTask{}, false
	}
	dueDate, ok := stringField(obj, "due_date")
	if !ok {
		return RawTask{}, false
	}
	raw := RawTask{
		Title:      title,
		DueDate:    dueDate,
		Importance: DefaultImportance,
	}
	if hours, ok := obj["estimated_hours"].(float64); ok {
		raw.EstimatedHours = &hours
	}
	if importance, ok := obj["importance"].(float64); ok {
		raw.Importance = int(importance)
	}
	raw.Dependencies = dependencyField(obj["dependencies"])
	return raw, true
}

func stringField(obj map[string]any, key string) (string, bool) {
	value, ok := obj[key].(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

func dependencyField(value any) []int {
	deps := []int{}
	items, ok := value.([]any)
	if !ok {
		return deps
	}
	for _, item := range items {
		if id, ok := item.(float64); ok {
			deps = append(deps, int(id))
		}
	}
	return deps
}
