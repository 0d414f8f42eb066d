package analyze

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/cmd"
	"github.com/taskdeck/taskdeck/cli/helpers"
	"github.com/taskdeck/taskdeck/cli/tui/components"
	"github.com/taskdeck/taskdeck/cli/tui/styles"
	"github.com/taskdeck/taskdeck/engine/scoring"
	"github.com/taskdeck/taskdeck/engine/task"
	"github.com/taskdeck/taskdeck/pkg/config"
	"golang.org/x/term"
)

// Options selects the input source and analysis shape for one run.
type Options struct {
	File     string
	Strategy string
	Suggest  bool
}

// NewAnalyzeCmd creates the one-shot analysis command: read a task
// batch, send it to the service, and print the scored ordering.
func NewAnalyzeCmd() *cobra.Command {
	opts := Options{}
	command := &cobra.Command{
		Use:   "analyze",
		Short: "Score and order a batch of tasks",
		Long: `Read a JSON task batch from a file or stdin, submit it to the
analysis service, and print the scored, prioritized ordering.`,
		Example: `  taskdeck analyze -f tasks.json
  cat tasks.json | taskdeck analyze -s fastest_wins
  taskdeck analyze -f tasks.json --suggest`,
		RunE: func(c *cobra.Command, args []string) error {
			executor := cmd.NewCommandExecutor(c)
			return executor.ExecuteCommand(c, args, cmd.ModeHandlers{
				JSON: func(ctx context.Context, c *cobra.Command, _ []string) error {
					return RunJSON(ctx, opts)
				},
				TUI: func(ctx context.Context, c *cobra.Command, _ []string) error {
					return runTUI(ctx, opts)
				},
			})
		},
	}
	command.Flags().StringVarP(&opts.File, "file", "f", "-", "Task batch file ('-' for stdin)")
	command.Flags().StringVarP(&opts.Strategy, "strategy", "s", scoring.DefaultStrategy, "Scoring strategy")
	command.Flags().BoolVar(&opts.Suggest, "suggest", false, "Return only the top suggestions")
	return command
}

// run reads the batch, loads it into a fresh store, and requests the
// analysis. Records without a usable title or due date are skipped; the
// count is reported alongside the results.
func run(ctx context.Context, opts Options) (*api.AnalyzeResult, int, error) {
	data, err := helpers.ReadInput(opts.File)
	if err != nil {
		return nil, 0, err
	}
	records, skipped, err := task.ParseBulk(data)
	if err != nil {
		return nil, 0, err
	}
	store := task.NewStore()
	store.AppendBatch(records)

	client, err := api.NewClient(ctx, config.FromContext(ctx))
	if err != nil {
		return nil, 0, err
	}
	var result *api.AnalyzeResult
	if opts.Suggest {
		result, err = client.Suggest(ctx, opts.Strategy, store.Snapshot())
	} else {
		result, err = client.Analyze(ctx, opts.Strategy, store.Snapshot())
	}
	if err != nil {
		return nil, 0, err
	}
	return result, skipped, nil
}

type outputTask struct {
	task.ScoredTask
	Position int       `json:"position"`
	Priority task.Band `json:"priority"`
}

type output struct {
	Strategy string       `json:"strategy"`
	Skipped  int          `json:"skipped"`
	Tasks    []outputTask `json:"tasks"`
}

// RunJSON runs the pipeline and writes machine readable output. The
// board command reuses it when a TUI cannot be hosted.
func RunJSON(ctx context.Context, opts Options) error {
	result, skipped, err := run(ctx, opts)
	if err != nil {
		return err
	}
	out := output{Strategy: result.Strategy, Skipped: skipped, Tasks: make([]outputTask, 0, len(result.Tasks))}
	for i, scored := range result.Tasks {
		out.Tasks = append(out.Tasks, outputTask{
			ScoredTask: scored,
			Position:   i + 1,
			Priority:   task.PriorityBand(scored.Score),
		})
	}
	return helpers.NewOutputWriter().WriteJSON(out)
}

func runTUI(ctx context.Context, opts Options) error {
	result, skipped, err := run(ctx, opts)
	if err != nil {
		return err
	}
	table := components.NewResultsTable()
	if width, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && width > 0 {
		table.SetSize(width, len(result.Tasks)+2)
	}
	table.SetResults(result.Tasks)

	header := styles.TitleStyle.Render(
		fmt.Sprintf("Analyzed %d task(s) with %s", len(result.Tasks), result.Strategy),
	)
	sections := []string{header, table.View()}
	if skipped > 0 {
		sections = append(sections, styles.WarningStyle.Render(
			fmt.Sprintf("Skipped %d record(s) without a usable title or due date", skipped),
		))
	}
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return nil
}
