package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/cli/tui/styles"
	"github.com/taskdeck/taskdeck/engine/task"
)

const noResultsPlaceholder = "No results yet. Add tasks and run an analysis."

// ResultsTable renders scored tasks in service order: position, task
// fields, score, priority band, and explanation. It never reorders or
// filters what the service returned.
type ResultsTable struct {
	table   table.Model
	results []task.ScoredTask
	width   int
}

// NewResultsTable creates a results table with default dimensions.
func NewResultsTable() ResultsTable {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Title", Width: 28},
		{Title: "Due", Width: 10},
		{Title: "Hours", Width: 5},
		{Title: "Imp", Width: 3},
		{Title: "Score", Width: 6},
		{Title: "Priority", Width: 8},
		{Title: "Explanation", Width: 40},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(10),
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
	return ResultsTable{table: t}
}

// SetResults replaces the displayed results, preserving service order.
func (r *ResultsTable) SetResults(results []task.ScoredTask) {
	r.results = results
	rows := make([]table.Row, 0, len(results))
	for i, scored := range results {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			truncate(scored.Title, 28),
			scored.DueDate,
			task.FormatHours(scored.EstimatedHours),
			task.FormatImportance(scored.Importance),
			task.FormatScore(scored.Score),
			string(task.PriorityBand(scored.Score)),
			truncate(scored.Explanation, 40),
		})
	}
	r.table.SetRows(rows)
}

// Results returns the currently displayed results.
func (r *ResultsTable) Results() []task.ScoredTask {
	return r.results
}

// SetSize adapts the table to the terminal dimensions.
func (r *ResultsTable) SetSize(width, height int) {
	r.width = width
	if height > 0 {
		r.table.SetHeight(height)
	}
	fixed := 3 + 10 + 5 + 3 + 6 + 8
	flexible := width - fixed - 18
	if flexible < 30 {
		flexible = 30
	}
	title := flexible / 3
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Title", Width: title},
		{Title: "Due", Width: 10},
		{Title: "Hours", Width: 5},
		{Title: "Imp", Width: 3},
		{Title: "Score", Width: 6},
		{Title: "Priority", Width: 8},
		{Title: "Explanation", Width: flexible - title},
	}
	r.table.SetColumns(columns)
}

// Focus gives the table keyboard focus for scrolling.
func (r *ResultsTable) Focus() {
	r.table.Focus()
}

// Blur removes keyboard focus.
func (r *ResultsTable) Blur() {
	r.table.Blur()
}

// Update forwards messages to the underlying table.
func (r ResultsTable) Update(msg tea.Msg) (ResultsTable, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the table, or a placeholder when no results are held.
func (r ResultsTable) View() string {
	if len(r.results) == 0 {
		width := r.width
		if width <= 0 {
			width = 80
		}
		return styles.PlaceholderStyle.Width(width).Align(lipgloss.Center).Render(noResultsPlaceholder)
	}
	return r.table.View()
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
