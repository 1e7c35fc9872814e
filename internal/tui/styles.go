package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("240")
	ColorWarning   = lipgloss.Color("214")
)

//nolint:gochecknoglobals // Shared lipgloss styles are read-only after init.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)

	// ButtonStyle renders an enabled navigation affordance.
	ButtonStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true).Padding(0, 1)

	// DisabledButtonStyle renders an affordance that cannot be activated.
	DisabledButtonStyle = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true).Padding(0, 1)

	// SelectedOptionStyle marks the active page size.
	SelectedOptionStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Underline(true)

	LoadingStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)
