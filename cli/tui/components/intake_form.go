package components

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/taskdeck/taskdeck/engine/task"
)

// IntakeValues holds the raw text of the manual-entry form fields.
type IntakeValues struct {
	Title          string
	DueDate        string
	EstimatedHours string
	Importance     string
	Dependencies   string
}

// Input converts the form values to a task input for the store. The
// store applies the same policy again, so the form validators are a
// convenience, not the authority.
func (v *IntakeValues) Input() task.Input {
	return task.Input{
		Title:          v.Title,
		DueDate:        v.DueDate,
		EstimatedHours: v.EstimatedHours,
		Importance:     v.Importance,
		Dependencies:   v.Dependencies,
	}
}

// Reset clears all field values.
func (v *IntakeValues) Reset() {
	*v = IntakeValues{}
}

// NewIntakeForm builds the five-field manual entry form. Field
// validators mirror the strict entry policy for immediate feedback.
func NewIntakeForm(values *IntakeValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&values.Title).
				Validate(requiredField("title")),
			huh.NewInput().
				Key("due_date").
				Title("Due date").
				Placeholder("2026-09-01").
				Value(&values.DueDate).
				Validate(requiredField("due date")),
			huh.NewInput().
				Key("estimated_hours").
				Title("Estimated hours").
				Placeholder("2.5").
				Value(&values.EstimatedHours).
				Validate(numericField),
			huh.NewInput().
				Key("importance").
				Title("Importance (1-10)").
				Value(&values.Importance).
				Validate(importanceField),
			huh.NewInput().
				Key("dependencies").
				Title("Dependencies").
				Placeholder("1,2").
				Description("Comma-separated task ids; anything else is dropped").
				Value(&values.Dependencies),
		),
	).WithShowHelp(true)
}

func requiredField(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

func numericField(value string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return errors.New("estimated hours must be a number")
	}
	return nil
}

func importanceField(value string) error {
	importance, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return errors.New("importance must be an integer")
	}
	if importance < 1 || importance > 10 {
		return errors.New("importance must be between 1 and 10")
	}
	return nil
}
