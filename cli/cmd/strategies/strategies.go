package strategies

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/cmd"
	"github.com/taskdeck/taskdeck/cli/helpers"
	"github.com/taskdeck/taskdeck/cli/tui/styles"
	"github.com/taskdeck/taskdeck/pkg/config"
)

// NewStrategiesCmd creates the command that lists the scoring
// strategies the service supports.
func NewStrategiesCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "strategies",
		Short: "List the available scoring strategies",
		RunE: func(c *cobra.Command, args []string) error {
			executor := cmd.NewCommandExecutor(c)
			return executor.ExecuteCommand(c, args, cmd.ModeHandlers{
				JSON: runJSON,
				TUI:  runTUI,
			})
		},
	}
	return command
}

func fetch(ctx context.Context) (*api.StrategyList, error) {
	client, err := api.NewClient(ctx, config.FromContext(ctx))
	if err != nil {
		return nil, err
	}
	return client.Strategies(ctx)
}

func runJSON(ctx context.Context, _ *cobra.Command, _ []string) error {
	list, err := fetch(ctx)
	if err != nil {
		return err
	}
	return helpers.NewOutputWriter().WriteJSON(list)
}

func runTUI(ctx context.Context, _ *cobra.Command, _ []string) error {
	list, err := fetch(ctx)
	if err != nil {
		return err
	}
	lines := []string{styles.TitleStyle.Render("Scoring strategies")}
	for _, name := range list.Strategies {
		line := "  " + name
		if name == list.Default {
			line += styles.HelpStyle.Render(" (default)")
		}
		lines = append(lines, line)
	}
	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return nil
}
