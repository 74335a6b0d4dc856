// Package ui provides rendering functions for the tabchat terminal UI.
//
// Render takes a RenderParams snapshot and produces the terminal output.
// It has no side effects and never changes application state. Lipgloss
// style definitions live in styles.go.
package ui
