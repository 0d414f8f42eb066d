package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/helpers"
	"github.com/taskdeck/taskdeck/cli/tui/components"
	"github.com/taskdeck/taskdeck/cli/tui/models"
	"github.com/taskdeck/taskdeck/cli/tui/styles"
	"github.com/taskdeck/taskdeck/engine/scoring"
	"github.com/taskdeck/taskdeck/engine/task"
)

type viewState int

const (
	stateBoard viewState = iota
	stateForm
	stateBulk
	stateFile
)

const requestTimeout = 30 * time.Second

type analyzeDoneMsg struct {
	result *api.AnalyzeResult
	err    error
}

type strategiesMsg struct {
	list *api.StrategyList
	err  error
}

// Model drives the interactive task board: the collection table, the
// manual entry form, the bulk import editor, and the analysis results.
type Model struct {
	base         models.BaseModel
	client       *api.Client
	store        *task.Store
	state        viewState
	strategies   []string
	strategyIdx  int
	formValues   components.IntakeValues
	form         *huh.Form
	filePath     string
	fileForm     *huh.Form
	bulk         textarea.Model
	tasks        components.TaskTable
	results      components.ResultsTable
	status       components.StatusBar
	spin         spinner.Model
	analyzing    bool
	confirmReset bool
}

func newModel(client *api.Client, store *task.Store, strategy string) Model {
	bulk := textarea.New()
	bulk.Placeholder = `[{"title": "Fix login bug", "due_date": "2026-09-01"}]`
	bulk.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)

	strategies := scoring.Strategies()
	idx := 0
	for i, name := range strategies {
		if name == strategy {
			idx = i
			break
		}
	}
	return Model{
		base:        models.NewBaseModel(models.ModeTUI),
		client:      client,
		store:       store,
		state:       stateBoard,
		strategies:  strategies,
		strategyIdx: idx,
		bulk:        bulk,
		tasks:       components.NewTaskTable(),
		results:     components.NewResultsTable(),
		status:      components.NewStatusBar(),
		spin:        spin,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchStrategiesCmd())
}

// fetchStrategiesCmd refreshes the strategy list from the service. A
// failure keeps the built-in list so the board works offline.
func (m Model) fetchStrategiesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		list, err := client.Strategies(ctx)
		return strategiesMsg{list: list, err: err}
	}
}

func (m Model) analyzeCmd(strategy string, tasks []task.Task) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := client.Analyze(ctx, strategy, tasks)
		return analyzeDoneMsg{result: result, err: err}
	}
}

func (m *Model) strategy() string {
	if len(m.strategies) == 0 {
		return scoring.DefaultStrategy
	}
	return m.strategies[m.strategyIdx]
}

func (m *Model) refreshTasks() {
	m.tasks.SetTasks(m.store.Snapshot())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.base.SetSize(msg.Width, msg.Height)
		m.tasks.SetSize(msg.Width, msg.Height/3)
		m.results.SetSize(msg.Width, msg.Height/3)
		m.status.SetSize(msg.Width)
		m.bulk.SetWidth(msg.Width - 4)
		m.bulk.SetHeight(msg.Height / 2)
		return m, nil
	case strategiesMsg:
		if msg.err == nil && msg.list != nil && len(msg.list.Strategies) > 0 {
			current := m.strategy()
			m.strategies = msg.list.Strategies
			m.strategyIdx = 0
			for i, name := range m.strategies {
				if name == current {
					m.strategyIdx = i
					break
				}
			}
		}
		return m, nil
	case analyzeDoneMsg:
		m.analyzing = false
		if msg.err != nil {
			m.status.SetError(msg.err.Error())
			return m, nil
		}
		m.results.SetResults(msg.result.Tasks)
		m.status.SetSuccess(fmt.Sprintf("Analyzed %d task(s) with %s", len(msg.result.Tasks), msg.result.Strategy))
		return m, nil
	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateBulk:
		return m.updateBulk(msg)
	case stateFile:
		return m.updateFile(msg)
	default:
		return m.updateBoard(msg)
	}
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	key := keyMsg.String()
	if key != "R" {
		m.confirmReset = false
	}
	switch key {
	case "q", "ctrl+c":
		m.base.Quitting = true
		return m, tea.Quit
	case "a":
		m.formValues.Reset()
		m.form = components.NewIntakeForm(&m.formValues)
		m.state = stateForm
		return m, m.form.Init()
	case "b":
		m.bulk.Reset()
		m.state = stateBulk
		return m, m.bulk.Focus()
	case "i":
		m.filePath = ""
		m.fileForm = newFileForm(&m.filePath)
		m.state = stateFile
		return m, m.fileForm.Init()
	case "s":
		if len(m.strategies) > 0 {
			m.strategyIdx = (m.strategyIdx + 1) % len(m.strategies)
			m.status.SetInfo(fmt.Sprintf("Strategy: %s", m.strategy()))
		}
		return m, nil
	case "R":
		if !m.confirmReset {
			m.confirmReset = true
			m.status.SetInfo("Press R again to clear the collection")
			return m, nil
		}
		m.confirmReset = false
		m.store.Reset()
		m.refreshTasks()
		m.results.SetResults(nil)
		m.status.SetInfo("Collection cleared; ids restart at 1")
		return m, nil
	case "enter":
		return m.startAnalysis()
	default:
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd
	}
}

// startAnalysis kicks off a request unless one is already in flight.
// Previous results are cleared immediately so stale output is never
// read as current.
func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	if m.analyzing {
		return m, nil
	}
	snapshot := m.store.Snapshot()
	if len(snapshot) == 0 {
		m.status.SetError(api.ErrNoTasks.Error())
		return m, nil
	}
	m.analyzing = true
	m.results.SetResults(nil)
	m.status.SetPending("Analyzing...")
	return m, tea.Batch(m.spin.Tick, m.analyzeCmd(m.strategy(), snapshot))
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		added, err := m.store.Append(m.formValues.Input())
		if err != nil {
			m.status.SetError(err.Error())
			m.form = components.NewIntakeForm(&m.formValues)
			m.state = stateForm
			return m, m.form.Init()
		}
		m.status.SetSuccess(fmt.Sprintf("Added task %d: %s", added.ID, added.Title))
		m.formValues.Reset()
		m.state = stateBoard
		m.refreshTasks()
		return m, nil
	case huh.StateAborted:
		m.formValues.Reset()
		m.state = stateBoard
		m.status.SetInfo("Entry canceled")
		return m, nil
	}
	return m, cmd
}

func (m Model) updateBulk(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = stateBoard
			m.status.SetInfo("Import canceled")
			return m, nil
		case "ctrl+s":
			return m.importBulk()
		}
	}
	var cmd tea.Cmd
	m.bulk, cmd = m.bulk.Update(msg)
	return m, cmd
}

func (m Model) importBulk() (tea.Model, tea.Cmd) {
	return m.importData([]byte(m.bulk.Value())), nil
}

// importData runs the lenient batch ingest and lands back on the board
// unless the payload was rejected wholesale.
func (m Model) importData(data []byte) Model {
	records, skipped, err := task.ParseBulk(data)
	if err != nil {
		m.status.SetError(err.Error())
		return m
	}
	added := m.store.AppendBatch(records)
	message := fmt.Sprintf("Imported %d task(s)", len(added))
	if skipped > 0 {
		message += fmt.Sprintf(", skipped %d without a usable title or due date", skipped)
	}
	m.status.SetSuccess(message)
	m.state = stateBoard
	m.refreshTasks()
	return m
}

func newFileForm(path *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Import file").
				Placeholder("tasks.json").
				Value(path),
		),
	).WithShowHelp(true)
}

func (m Model) updateFile(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.fileForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.fileForm = f
	}
	switch m.fileForm.State {
	case huh.StateCompleted:
		path := strings.TrimSpace(m.filePath)
		if path == "" {
			m.status.SetError("import file path is required")
			m.state = stateBoard
			return m, nil
		}
		data, err := helpers.ReadInput(path)
		if err != nil {
			m.status.SetError(err.Error())
			m.state = stateBoard
			return m, nil
		}
		return m.importData(data), nil
	case huh.StateAborted:
		m.state = stateBoard
		m.status.SetInfo("Import canceled")
		return m, nil
	}
	return m, cmd
}

func (m Model) View() string {
	if m.base.Quitting {
		return ""
	}
	switch m.state {
	case stateForm:
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Add task"),
			m.form.View(),
			m.status.View(),
		)
	case stateBulk:
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Bulk import"),
			m.bulk.View(),
			styles.HelpStyle.Render("ctrl+s import • esc cancel"),
			m.status.View(),
		)
	case stateFile:
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.TitleStyle.Render("Import from file"),
			m.fileForm.View(),
			m.status.View(),
		)
	default:
		return m.boardView()
	}
}

func (m Model) boardView() string {
	header := styles.HeaderStyle.Render(
		fmt.Sprintf("taskdeck • %d task(s) • strategy: %s", m.tasks.Count(), m.strategy()),
	)
	sections := []string{
		header,
		styles.TitleStyle.Render("Tasks"),
		m.tasks.View(),
		styles.TitleStyle.Render("Results"),
	}
	if m.analyzing {
		sections = append(sections, m.spin.View()+" Analyzing...")
	} else {
		sections = append(sections, m.results.View())
	}
	sections = append(sections,
		m.status.View(),
		styles.HelpStyle.Render("a add • b bulk • i import file • s strategy • enter analyze • R reset • q quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
