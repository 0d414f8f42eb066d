package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/cli/tui/styles"
)

// StatusLevel classifies status bar messages.
type StatusLevel int

const (
	StatusNone StatusLevel = iota
	StatusInfo
	StatusSuccess
	StatusError
	StatusPending
)

// StatusBar shows the latest outcome of a user action. Each new message
// replaces the previous one.
type StatusBar struct {
	level   StatusLevel
	message string
	width   int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetSize records the render width.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetInfo shows an informational message.
func (s *StatusBar) SetInfo(message string) {
	s.level = StatusInfo
	s.message = message
}

// SetSuccess shows a success message.
func (s *StatusBar) SetSuccess(message string) {
	s.level = StatusSuccess
	s.message = message
}

// SetError shows an error message.
func (s *StatusBar) SetError(message string) {
	s.level = StatusError
	s.message = message
}

// SetPending shows an in-progress message.
func (s *StatusBar) SetPending(message string) {
	s.level = StatusPending
	s.message = message
}

// Clear removes the current message.
func (s *StatusBar) Clear() {
	s.level = StatusNone
	s.message = ""
}

// Message returns the current message text.
func (s *StatusBar) Message() string {
	return s.message
}

// Level returns the current message level.
func (s *StatusBar) Level() StatusLevel {
	return s.level
}

// View renders the status line.
func (s StatusBar) View() string {
	if s.level == StatusNone || s.message == "" {
		return ""
	}
	var style lipgloss.Style
	switch s.level {
	case StatusSuccess:
		style = styles.SuccessStyle
	case StatusError:
		style = styles.ErrorStyle
	case StatusPending:
		style = styles.WarningStyle
	default:
		style = styles.InfoStyle
	}
	if s.width > 0 {
		style = style.Width(s.width)
	}
	return style.Render(s.message)
}
