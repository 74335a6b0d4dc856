package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorAccent    = lipgloss.Color("5")   // Magenta
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorWarning   = lipgloss.Color("3")   // Yellow
	ColorDanger    = lipgloss.Color("1")   // Red
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorSelected  = lipgloss.Color("15")  // White
	ColorText      = lipgloss.Color("252") // Light text
	ColorTabBorder = lipgloss.Color("54")  // Deep purple
)

// Styles
var (
	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	TabBodyStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorTabBorder).
			Padding(0, 1)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// Tab bar
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Padding(0, 2)

	SelectedTabStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true).
				Padding(0, 2)

	// Pane header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// Message log
	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Input line
	EditingStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	// Help and footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)
)

// Symbols
const (
	SymbolDivider = " "
	FooterText    = "◄ ► to change tab | Press q to quit"
)
