package board

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/tui/components"
	"github.com/taskdeck/taskdeck/engine/scoring"
	"github.com/taskdeck/taskdeck/engine/task"
	"github.com/taskdeck/taskdeck/pkg/config"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Client.RetryCount = 0
	client, err := api.NewClient(context.Background(), cfg)
	require.NoError(t, err)
	return newModel(client, task.NewStore(), scoring.DefaultStrategy)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func addTask(t *testing.T, m *Model) {
	t.Helper()
	_, err := m.store.Append(task.Input{
		Title:          "Fix bug",
		DueDate:        "2026-09-01",
		EstimatedHours: "2",
		Importance:     "7",
	})
	require.NoError(t, err)
	m.refreshTasks()
}

func TestBulkImport(t *testing.T) {
	t.Run("Should import records and report the skip count", func(t *testing.T) {
		m := testModel(t)
		m.bulk.SetValue(`[
			{"title": "A", "due_date": "2026-09-01"},
			{"title": "", "due_date": "2026-09-01"},
			{"title": "B", "due_date": "2026-09-02"}
		]`)
		updated, _ := m.importBulk()
		next := updated.(Model)
		assert.Equal(t, 2, next.store.Len())
		assert.Contains(t, next.status.Message(), "Imported 2")
		assert.Contains(t, next.status.Message(), "skipped 1")
		assert.Equal(t, stateBoard, next.state)
	})
	t.Run("Should reject malformed JSON without touching the store", func(t *testing.T) {
		m := testModel(t)
		m.bulk.SetValue(`{not json`)
		updated, _ := m.importBulk()
		next := updated.(Model)
		assert.Zero(t, next.store.Len())
		assert.Equal(t, components.StatusError, next.status.Level())
	})
}

func TestStartAnalysis(t *testing.T) {
	t.Run("Should refuse an empty collection without a request", func(t *testing.T) {
		m := testModel(t)
		updated, cmd := m.startAnalysis()
		next := updated.(Model)
		assert.Nil(t, cmd)
		assert.False(t, next.analyzing)
		assert.Equal(t, components.StatusError, next.status.Level())
	})
	t.Run("Should clear previous results and mark the run pending", func(t *testing.T) {
		m := testModel(t)
		addTask(t, &m)
		m.results.SetResults([]task.ScoredTask{{Task: task.Task{ID: 1, Title: "stale"}}})
		updated, cmd := m.startAnalysis()
		next := updated.(Model)
		assert.NotNil(t, cmd)
		assert.True(t, next.analyzing)
		assert.Empty(t, next.results.Results())
		assert.Equal(t, components.StatusPending, next.status.Level())
	})
	t.Run("Should ignore the trigger while a run is in flight", func(t *testing.T) {
		m := testModel(t)
		addTask(t, &m)
		m.analyzing = true
		_, cmd := m.startAnalysis()
		assert.Nil(t, cmd)
	})
}

func TestAnalyzeDone(t *testing.T) {
	t.Run("Should show results and a success status", func(t *testing.T) {
		m := testModel(t)
		m.analyzing = true
		result := &api.AnalyzeResult{
			Strategy: "smart_balance",
			Tasks:    []task.ScoredTask{{Task: task.Task{ID: 1, Title: "A"}, Score: 0.9}},
		}
		updated, _ := m.Update(analyzeDoneMsg{result: result})
		next := updated.(Model)
		assert.False(t, next.analyzing)
		assert.Len(t, next.results.Results(), 1)
		assert.Equal(t, components.StatusSuccess, next.status.Level())
	})
	t.Run("Should surface a generic failure message", func(t *testing.T) {
		m := testModel(t)
		m.analyzing = true
		updated, _ := m.Update(analyzeDoneMsg{err: &api.TransportError{Op: "analyze", Cause: errors.New("refused")}})
		next := updated.(Model)
		assert.False(t, next.analyzing)
		assert.Equal(t, components.StatusError, next.status.Level())
		assert.NotContains(t, next.status.Message(), "refused")
	})
}

func TestBoardKeys(t *testing.T) {
	t.Run("Should cycle strategies with s", func(t *testing.T) {
		m := testModel(t)
		before := m.strategy()
		updated, _ := m.updateBoard(keyRune('s'))
		next := updated.(Model)
		assert.NotEqual(t, before, next.strategy())
	})
	t.Run("Should reset the collection and results after confirming with R", func(t *testing.T) {
		m := testModel(t)
		addTask(t, &m)
		m.results.SetResults([]task.ScoredTask{{Task: task.Task{ID: 1}}})
		updated, _ := m.updateBoard(keyRune('R'))
		next := updated.(Model)
		assert.Equal(t, 1, next.store.Len(), "first press only asks for confirmation")
		updated, _ = next.updateBoard(keyRune('R'))
		next = updated.(Model)
		assert.Zero(t, next.store.Len())
		assert.Empty(t, next.results.Results())
	})
	t.Run("Should drop the reset confirmation on any other key", func(t *testing.T) {
		m := testModel(t)
		addTask(t, &m)
		updated, _ := m.updateBoard(keyRune('R'))
		next := updated.(Model)
		updated, _ = next.updateBoard(keyRune('s'))
		next = updated.(Model)
		updated, _ = next.updateBoard(keyRune('R'))
		next = updated.(Model)
		assert.Equal(t, 1, next.store.Len())
	})
	t.Run("Should open the file import prompt with i", func(t *testing.T) {
		m := testModel(t)
		updated, cmd := m.updateBoard(keyRune('i'))
		next := updated.(Model)
		assert.Equal(t, stateFile, next.state)
		assert.NotNil(t, cmd)
	})
	t.Run("Should open the intake form with a", func(t *testing.T) {
		m := testModel(t)
		updated, cmd := m.updateBoard(keyRune('a'))
		next := updated.(Model)
		assert.Equal(t, stateForm, next.state)
		assert.NotNil(t, cmd)
	})
	t.Run("Should render the header with the task count and strategy", func(t *testing.T) {
		m := testModel(t)
		addTask(t, &m)
		view := m.boardView()
		assert.Contains(t, view, "taskdeck • 1 task(s) • strategy: "+scoring.DefaultStrategy)
	})
	t.Run("Should adopt the fetched strategy list", func(t *testing.T) {
		m := testModel(t)
		updated, _ := m.Update(strategiesMsg{list: &api.StrategyList{
			Strategies: []string{"fastest_wins", "smart_balance"},
			Default:    "smart_balance",
		}})
		next := updated.(Model)
		assert.Equal(t, []string{"fastest_wins", "smart_balance"}, next.strategies)
		assert.Equal(t, "smart_balance", next.strategy())
	})
}
