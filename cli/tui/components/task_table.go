package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/cli/tui/styles"
	"github.com/taskdeck/taskdeck/engine/task"
)

const emptyCollectionPlaceholder = "No tasks yet. Press a to add one or b to paste a batch."

// TaskTable renders the current task collection in insertion order.
type TaskTable struct {
	table table.Model
	count int
	width int
}

// NewTaskTable creates a collection table with default dimensions.
func NewTaskTable() TaskTable {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Title", Width: 36},
		{Title: "Due", Width: 10},
		{Title: "Hours", Width: 5},
		{Title: "Imp", Width: 3},
		{Title: "Deps", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(styles.ColorHighlight).
		Bold(false)
	t.SetStyles(s)
	return TaskTable{table: t}
}

// SetTasks replaces the displayed collection.
func (t *TaskTable) SetTasks(tasks []task.Task) {
	t.count = len(tasks)
	rows := make([]table.Row, 0, len(tasks))
	for _, item := range tasks {
		rows = append(rows, table.Row{
			strconv.Itoa(item.ID),
			truncate(item.Title, 36),
			item.DueDate,
			task.FormatHours(item.EstimatedHours),
			task.FormatImportance(item.Importance),
			formatDependencies(item.Dependencies),
		})
	}
	t.table.SetRows(rows)
}

// Count returns the number of displayed tasks.
func (t *TaskTable) Count() int {
	return t.count
}

// SetSize adapts the table to the terminal dimensions.
func (t *TaskTable) SetSize(width, height int) {
	t.width = width
	if height > 0 {
		t.table.SetHeight(height)
	}
	title := width - (4 + 10 + 5 + 3 + 12) - 14
	if title < 20 {
		title = 20
	}
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Title", Width: title},
		{Title: "Due", Width: 10},
		{Title: "Hours", Width: 5},
		{Title: "Imp", Width: 3},
		{Title: "Deps", Width: 12},
	}
	t.table.SetColumns(columns)
}

// Update forwards messages to the underlying table.
func (t TaskTable) Update(msg tea.Msg) (TaskTable, tea.Cmd) {
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

// View renders the table, or a placeholder for an empty collection.
func (t TaskTable) View() string {
	if t.count == 0 {
		width := t.width
		if width <= 0 {
			width = 80
		}
		return styles.PlaceholderStyle.Width(width).Align(lipgloss.Center).Render(emptyCollectionPlaceholder)
	}
	return t.table.View()
}

func formatDependencies(deps []int) string {
	if len(deps) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(deps))
	for _, dep := range deps {
		parts = append(parts, strconv.Itoa(dep))
	}
	return strings.Join(parts, ",")
}
