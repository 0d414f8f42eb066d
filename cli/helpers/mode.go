package helpers

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/cli/tui/models"
	"github.com/taskdeck/taskdeck/pkg/config"
)

// DetectMode determines the appropriate interface mode based on
// explicit configuration, environment, and terminal capabilities.
func DetectMode(cmd *cobra.Command) models.Mode {
	cfg := config.FromContext(cmd.Context())

	// 1. Explicit format request wins; the alias overrides when set
	format := cfg.CLI.DefaultFormat
	if cfg.CLI.OutputFormatAlias != "" {
		format = cfg.CLI.OutputFormatAlias
	}
	switch OutputFormat(format) {
	case OutputFormatJSON:
		return models.ModeJSON
	case OutputFormatTUI:
		return models.ModeTUI
	}

	// 2. A forced interactive session overrides the environment checks
	if cfg.CLI.Interactive {
		return models.ModeTUI
	}

	// 3. CI environments get machine readable output
	if isCI() {
		return models.ModeJSON
	}

	// 4. Piped or redirected output cannot host a TUI
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return models.ModeJSON
	}

	// 5. NO_COLOR requests plain output
	if os.Getenv("NO_COLOR") != "" {
		return models.ModeJSON
	}

	// 6. Dumb terminals cannot render the TUI
	if term := os.Getenv("TERM"); term == "dumb" || term == "" {
		return models.ModeJSON
	}

	return models.ModeTUI
}

func isCI() bool {
	ciVars := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"BUILDKITE",
		"CIRCLECI",
		"TRAVIS",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ShouldUseColor reports whether colored output is appropriate.
func ShouldUseColor(cmd *cobra.Command) bool {
	cfg := config.FromContext(cmd.Context())
	if cfg.CLI.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return DetectMode(cmd) == models.ModeTUI
}
