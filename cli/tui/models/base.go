package models

// Mode represents the interface mode (JSON or TUI)
type Mode string

const (
	// ModeJSON is the non-interactive machine readable mode
	ModeJSON Mode = "json"
	// ModeTUI is the interactive terminal UI mode
	ModeTUI Mode = "tui"
)

// BaseModel contains common state shared by the interactive models.
type BaseModel struct {
	Mode     Mode
	Width    int
	Height   int
	Quitting bool
	Err      error
}

// NewBaseModel creates a base model for the given mode.
func NewBaseModel(mode Mode) BaseModel {
	return BaseModel{Mode: mode}
}

// SetSize records the latest terminal dimensions.
func (m *BaseModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}
