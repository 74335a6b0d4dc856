package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/tabchat/internal/config"
)

// KeyMap defines the Normal-mode keybindings.
type KeyMap struct {
	Edit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding

	// Interrupt quits from any mode.
	Interrupt key.Binding
}

// EditKeyMap defines the Editing-mode keybindings. Any other printable
// key is inserted into the input line.
type EditKeyMap struct {
	Commit    key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Leave     key.Binding
}

// DefaultKeyMap returns the default Normal-mode bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// DefaultEditKeyMap returns the Editing-mode bindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "post"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "normal"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if keys := config.ParseKeys(cfg.Edit); len(keys) > 0 {
		km.Edit = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.Edit, "edit"),
		)
	}
	if keys := config.ParseKeys(cfg.NextTab); len(keys) > 0 {
		km.NextTab = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.NextTab, "next tab"),
		)
	}
	if keys := config.ParseKeys(cfg.PrevTab); len(keys) > 0 {
		km.PrevTab = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.PrevTab, "prev tab"),
		)
	}
	if keys := config.ParseKeys(cfg.Quit); len(keys) > 0 {
		km.Quit = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Edit, k.PrevTab, k.NextTab}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Quit, k.Interrupt},
		{k.PrevTab, k.NextTab},
	}
}

// ShortHelp implements help.KeyMap.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Leave, k.Commit}
}

// FullHelp implements help.KeyMap.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Leave},
		{k.Left, k.Right, k.Backspace},
	}
}
