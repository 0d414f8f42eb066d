package board

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/cmd"
	"github.com/taskdeck/taskdeck/cli/cmd/analyze"
	"github.com/taskdeck/taskdeck/engine/scoring"
	"github.com/taskdeck/taskdeck/engine/task"
	"github.com/taskdeck/taskdeck/pkg/config"
)

// NewBoardCmd creates the interactive board command. Without a usable
// terminal it degrades to the one-shot analyze pipeline.
func NewBoardCmd() *cobra.Command {
	var (
		file     string
		strategy string
	)
	command := &cobra.Command{
		Use:   "board",
		Short: "Interactive task board",
		Long: `Collect tasks through a form or bulk JSON paste, pick a scoring
strategy, and view the prioritized ordering from the analysis service.`,
		Example: `  taskdeck board
  taskdeck board -s deadline_driven
  taskdeck board -f tasks.json -o json`,
		RunE: func(c *cobra.Command, args []string) error {
			executor := cmd.NewCommandExecutor(c)
			return executor.ExecuteCommand(c, args, cmd.ModeHandlers{
				JSON: func(ctx context.Context, _ *cobra.Command, _ []string) error {
					return analyze.RunJSON(ctx, analyze.Options{File: file, Strategy: strategy})
				},
				TUI: func(ctx context.Context, _ *cobra.Command, _ []string) error {
					return runBoard(ctx, strategy)
				},
			})
		},
	}
	command.Flags().StringVarP(&file, "file", "f", "-", "Task batch file for non-interactive runs")
	command.Flags().StringVarP(&strategy, "strategy", "s", scoring.DefaultStrategy, "Initial scoring strategy")
	return command
}

func runBoard(ctx context.Context, strategy string) error {
	client, err := api.NewClient(ctx, config.FromContext(ctx))
	if err != nil {
		return err
	}
	model := newModel(client, task.NewStore(), strategy)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board session failed: %w", err)
	}
	return nil
}
