package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/engine/task"
)

func scored(title string, score float64) task.ScoredTask {
	hours := 2.0
	return task.ScoredTask{
		Task: task.Task{
			ID:             1,
			Title:          title,
			DueDate:        "2026-09-01",
			EstimatedHours: &hours,
			Importance:     7,
			Dependencies:   []int{},
		},
		Score:       score,
		Explanation: "Important.",
	}
}

func TestResultsTable(t *testing.T) {
	t.Run("Should show a placeholder when no results are held", func(t *testing.T) {
		table := NewResultsTable()
		assert.Contains(t, table.View(), "No results yet")
	})
	t.Run("Should render results in service order with positions", func(t *testing.T) {
		table := NewResultsTable()
		table.SetResults([]task.ScoredTask{scored("Second", 0.4), scored("First", 0.9)})
		view := table.View()
		assert.Less(t, strings.Index(view, "Second"), strings.Index(view, "First"))
		assert.Contains(t, view, "high")
		assert.Contains(t, view, "low")
	})
	t.Run("Should render a dash for unknown hours", func(t *testing.T) {
		table := NewResultsTable()
		item := scored("Open ended", 0.6)
		item.EstimatedHours = nil
		table.SetResults([]task.ScoredTask{item})
		assert.Contains(t, table.View(), "-")
	})
}

func TestTaskTable(t *testing.T) {
	t.Run("Should show a placeholder for an empty collection", func(t *testing.T) {
		table := NewTaskTable()
		table.SetTasks(nil)
		assert.Contains(t, table.View(), "No tasks yet")
	})
	t.Run("Should render dependencies as a comma list", func(t *testing.T) {
		assert.Equal(t, "1,2,3", formatDependencies([]int{1, 2, 3}))
		assert.Equal(t, "-", formatDependencies(nil))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Should leave short strings alone", func(t *testing.T) {
		assert.Equal(t, "short", truncate("short", 10))
	})
	t.Run("Should cut long strings with an ellipsis", func(t *testing.T) {
		out := truncate("a very long explanation indeed", 10)
		assert.Len(t, out, 10)
		assert.True(t, strings.HasSuffix(out, "..."))
	})
}

func TestIntakeValidators(t *testing.T) {
	t.Run("Should require title and due date", func(t *testing.T) {
		assert.Error(t, requiredField("title")("   "))
		assert.NoError(t, requiredField("title")("Fix bug"))
	})
	t.Run("Should require numeric hours", func(t *testing.T) {
		assert.Error(t, numericField("soon"))
		assert.NoError(t, numericField("2.5"))
	})
	t.Run("Should bound importance to 1 through 10", func(t *testing.T) {
		assert.Error(t, importanceField("0"))
		assert.Error(t, importanceField("11"))
		assert.Error(t, importanceField("high"))
		assert.NoError(t, importanceField("10"))
	})
}

func TestIntakeValues(t *testing.T) {
	t.Run("Should convert to a task input verbatim", func(t *testing.T) {
		values := IntakeValues{
			Title:          "Fix bug",
			DueDate:        "2026-09-01",
			EstimatedHours: "2",
			Importance:     "7",
			Dependencies:   "1, 2",
		}
		in := values.Input()
		parsed, err := task.NewTask(in)
		require.NoError(t, err)
		assert.Equal(t, "Fix bug", parsed.Title)
		assert.Equal(t, []int{1, 2}, parsed.Dependencies)
	})
	t.Run("Should reset to empty fields", func(t *testing.T) {
		values := IntakeValues{Title: "x"}
		values.Reset()
		assert.Empty(t, values.Title)
	})
}

func TestStatusBar(t *testing.T) {
	t.Run("Should render nothing when empty", func(t *testing.T) {
		bar := NewStatusBar()
		assert.Empty(t, bar.View())
	})
	t.Run("Should replace the previous message", func(t *testing.T) {
		bar := NewStatusBar()
		bar.SetError("bad input")
		bar.SetSuccess("added task 1")
		assert.Equal(t, "added task 1", bar.Message())
		assert.Equal(t, StatusSuccess, bar.Level())
		assert.Contains(t, bar.View(), "added task 1")
	})
}
