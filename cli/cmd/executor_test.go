package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/cli/api"
	"github.com/taskdeck/taskdeck/cli/tui/models"
	"github.com/taskdeck/taskdeck/engine/task"
	"github.com/taskdeck/taskdeck/pkg/config"
)

func jsonCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cfg := config.Default()
	cfg.CLI.DefaultFormat = "json"
	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(config.ContextWithConfig(context.Background(), cfg))
	return cmd
}

func TestExecuteCommand(t *testing.T) {
	t.Run("Should run the json handler in json mode", func(t *testing.T) {
		cmd := jsonCommand(t)
		executor := NewCommandExecutor(cmd)
		require.Equal(t, models.ModeJSON, executor.Mode())
		ran := ""
		err := executor.ExecuteCommand(cmd, nil, ModeHandlers{
			JSON: func(context.Context, *cobra.Command, []string) error { ran = "json"; return nil },
			TUI:  func(context.Context, *cobra.Command, []string) error { ran = "tui"; return nil },
		})
		require.NoError(t, err)
		assert.Equal(t, "json", ran)
	})
	t.Run("Should normalize handler errors to cli errors", func(t *testing.T) {
		cmd := jsonCommand(t)
		executor := NewCommandExecutor(cmd)
		err := executor.ExecuteCommand(cmd, nil, ModeHandlers{
			JSON: func(context.Context, *cobra.Command, []string) error { return api.ErrNoTasks },
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VALIDATION")
	})
}

func TestCategorizeError(t *testing.T) {
	executor := NewCommandExecutor(jsonCommand(t))
	t.Run("Should map an empty collection to a validation error", func(t *testing.T) {
		cliErr := executor.categorizeError(api.ErrNoTasks)
		assert.Equal(t, "VALIDATION", cliErr.Code)
		assert.Equal(t, api.ErrNoTasks.Error(), cliErr.Message)
	})
	t.Run("Should map transport failures to a network error", func(t *testing.T) {
		cliErr := executor.categorizeError(&api.TransportError{Op: "analyze", Cause: errors.New("refused")})
		assert.Equal(t, "NETWORK", cliErr.Code)
		assert.NotContains(t, cliErr.Message, "refused")
	})
	t.Run("Should map remote failures without leaking the body", func(t *testing.T) {
		cliErr := executor.categorizeError(&api.RemoteError{Op: "analyze", StatusCode: 502, Body: "<html>gateway</html>"})
		assert.Equal(t, "SERVICE", cliErr.Code)
		assert.NotContains(t, cliErr.Message, "gateway")
		assert.NotContains(t, cliErr.Details, "gateway")
	})
	t.Run("Should map task validation failures with the field detail", func(t *testing.T) {
		cliErr := executor.categorizeError(&task.ValidationError{Field: "title", Reason: "is required"})
		assert.Equal(t, "VALIDATION", cliErr.Code)
		assert.Contains(t, cliErr.Details, "title")
	})
	t.Run("Should map malformed bulk input to a validation error", func(t *testing.T) {
		cliErr := executor.categorizeError(task.ErrNotArray)
		assert.Equal(t, "VALIDATION", cliErr.Code)
	})
	t.Run("Should map context cancellation", func(t *testing.T) {
		assert.Equal(t, "CANCELED", executor.categorizeError(context.Canceled).Code)
		assert.Equal(t, "TIMEOUT", executor.categorizeError(context.DeadlineExceeded).Code)
	})
	t.Run("Should pass existing cli errors through", func(t *testing.T) {
		original := &api.TransportError{Op: "analyze"}
		first := executor.categorizeError(original)
		assert.Same(t, first, executor.categorizeError(first))
	})
}
