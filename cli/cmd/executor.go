package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/helpers"
	"github.com/taskdeck/taskdeck/cli/tui/models"
	"github.com/taskdeck/taskdeck/engine/task"
)

// HandlerFunc defines the signature for command handlers
type HandlerFunc func(ctx context.Context, cmd *cobra.Command, args []string) error

// ModeHandlers contains handlers for the two interface modes
type ModeHandlers struct {
	JSON HandlerFunc
	TUI  HandlerFunc
}

// CommandExecutor handles common command execution patterns
type CommandExecutor struct {
	mode models.Mode
}

// NewCommandExecutor creates a new command executor with mode detection
func NewCommandExecutor(cmd *cobra.Command) *CommandExecutor {
	return &CommandExecutor{mode: helpers.DetectMode(cmd)}
}

// Mode returns the detected interface mode.
func (e *CommandExecutor) Mode() models.Mode {
	return e.mode
}

// ExecuteCommand runs the handler matching the detected mode and
// normalizes any error for output.
func (e *CommandExecutor) ExecuteCommand(cmd *cobra.Command, args []string, handlers ModeHandlers) error {
	ctx := cmd.Context()
	var handler HandlerFunc
	switch e.mode {
	case models.ModeJSON:
		handler = handlers.JSON
	case models.ModeTUI:
		handler = handlers.TUI
	default:
		handler = handlers.JSON
	}
	if handler == nil {
		return helpers.NewCliError("INTERNAL", "no handler for mode", string(e.mode))
	}
	if err := handler(ctx, cmd, args); err != nil {
		cliErr := e.categorizeError(err)
		helpers.OutputError(cliErr, e.mode)
		return cliErr
	}
	return nil
}

// categorizeError maps domain errors onto user-facing CLI errors. Raw
// service bodies never surface here; they stay in the logs.
func (e *CommandExecutor) categorizeError(err error) *helpers.CliError {
	var cliErr *helpers.CliError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	var validation *task.ValidationError
	var transport *api.TransportError
	var remote *api.RemoteError
	switch {
	case errors.Is(err, context.Canceled):
		return helpers.NewCliError("CANCELED", "operation canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return helpers.NewCliError("TIMEOUT", "operation timed out")
	case errors.Is(err, api.ErrNoTasks):
		return helpers.NewCliError("VALIDATION", api.ErrNoTasks.Error())
	case errors.As(err, &validation):
		return helpers.NewCliError("VALIDATION", "invalid task input", validation.Error())
	case errors.Is(err, task.ErrInvalidJSON), errors.Is(err, task.ErrNotArray):
		return helpers.NewCliError("VALIDATION", err.Error())
	case errors.As(err, &transport):
		return helpers.NewCliError("NETWORK", transport.Error())
	case errors.As(err, &remote):
		return helpers.NewCliError("SERVICE", remote.Error())
	default:
		return helpers.NewCliError("INTERNAL", "command failed", err.Error())
	}
}
