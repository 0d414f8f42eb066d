package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/engine/task"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorHighlight = lipgloss.Color("#874BFD")
	ColorBorder    = lipgloss.Color("#444444")
	ColorMuted     = lipgloss.Color("#888888")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorWarning   = lipgloss.Color("#FFA500")
	ColorError     = lipgloss.Color("#FF6B6B")
)

// Shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5DADE2"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Priority band styles
var (
	BandHighStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	BandMediumStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	BandLowStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// BandStyle returns the style for a priority band.
func BandStyle(band task.Band) lipgloss.Style {
	switch band {
	case task.BandHigh:
		return BandHighStyle
	case task.BandMedium:
		return BandMediumStyle
	default:
		return BandLowStyle
	}
}
