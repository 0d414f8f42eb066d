package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/cli/tui/models"
)

// CliError represents a CLI-specific error with enhanced context
type CliError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *CliError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewCliError creates a new CLI error with context
func NewCliError(code, message string, details ...string) *CliError {
	err := &CliError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// FormatError formats errors based on output mode
func FormatError(err error, mode models.Mode) string {
	if err == nil {
		return ""
	}
	switch mode {
	case models.ModeJSON:
		return formatErrorJSON(err)
	case models.ModeTUI:
		return formatErrorTUI(err)
	default:
		return err.Error()
	}
}

// formatErrorJSON formats errors for JSON output according to API standards
func formatErrorJSON(err error) string {
	var errorResponse map[string]any
	if cliErr, ok := err.(*CliError); ok {
		errorResponse = map[string]any{
			"error":   cliErr.Message,
			"details": cliErr.Details,
		}
	} else {
		errorResponse = map[string]any{
			"error":   err.Error(),
			"details": "",
		}
	}
	jsonBytes, marshalErr := json.MarshalIndent(errorResponse, "", "  ")
	if marshalErr != nil {
		return `{"error": "JSON marshaling failed", "details": ""}`
	}
	return string(jsonBytes)
}

// formatErrorTUI formats errors for TUI output with color
func formatErrorTUI(err error) string {
	message := err.Error()
	details := ""
	if cliErr, ok := err.(*CliError); ok && cliErr != nil {
		message = cliErr.Message
		details = cliErr.Details
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true)
	result := style.Render(message)
	if details != "" {
		detailStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
		result += "\n" + detailStyle.Render(fmt.Sprintf("Details: %s", details))
	}
	return result
}

// OutputError outputs an error to stderr in the appropriate format
func OutputError(err error, mode models.Mode) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatError(err, mode))
}
