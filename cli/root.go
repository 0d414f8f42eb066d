package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/taskdeck/taskdeck/cli/cmd/analyze"
	"github.com/taskdeck/taskdeck/cli/cmd/board"
	"github.com/taskdeck/taskdeck/cli/cmd/serve"
	"github.com/taskdeck/taskdeck/cli/cmd/strategies"
	"github.com/taskdeck/taskdeck/pkg/config"
	"github.com/taskdeck/taskdeck/pkg/logger"
	"github.com/taskdeck/taskdeck/pkg/version"
)

// flagToConfigPath maps changed CLI flags onto koanf configuration
// paths. Only flags listed here participate in the override layer.
var flagToConfigPath = map[string]string{
	"base-url":    "client.base_url",
	"format":      "cli.default_format",
	"no-color":    "cli.no_color",
	"interactive": "cli.interactive",
	"log-level":   "runtime.log_level",
}

// RootCmd creates the taskdeck root command.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task intake and prioritization from the terminal",
		Long: `taskdeck collects tasks through a form or bulk JSON input, sends
them to an analysis service, and shows the scored, prioritized ordering.
It also hosts the analysis service itself via the serve command.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupContext(cmd)
		},
	}
	registerGlobalFlags(rootCmd)
	rootCmd.AddCommand(
		board.NewBoardCmd(),
		analyze.NewAnalyzeCmd(),
		strategies.NewStrategiesCmd(),
		serve.NewServeCmd(),
	)
	return rootCmd
}

func registerGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.StringP("format", "o", "", "Output format (auto, json, tui)")
	flags.String("base-url", "", "Analysis service base URL")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("interactive", false, "Force interactive prompts")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "Log in JSON format")
	flags.Bool("log-source", false, "Include source locations in logs")
}

// setupContext loads configuration and logging and attaches both to the
// command context. Precedence: defaults, YAML file, changed flags, then
// environment variables.
func setupContext(cmd *cobra.Command) error {
	// A .env file is a developer convenience; absence is fine.
	_ = godotenv.Load()

	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.SetupLogger(logLevel, logJSON, logSource)

	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	ctx := logger.ContextWithLogger(cmd.Context(), log)
	cfg, err := config.NewService().Load(ctx,
		config.NewYAMLProvider(configFile),
		config.NewFlagProvider(collectFlagOverrides(cmd)),
	)
	if err != nil {
		return err
	}
	cmd.SetContext(config.ContextWithConfig(ctx, cfg))
	return nil
}

// collectFlagOverrides gathers only the flags the user actually set, so
// flag defaults never mask YAML values.
func collectFlagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		path, ok := flagToConfigPath[flag.Name]
		if !ok {
			return
		}
		overrides[path] = flag.Value.String()
	})
	return overrides
}
