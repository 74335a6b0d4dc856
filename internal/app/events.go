package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyKind tells a key press from a key release.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
)

func (k KeyKind) String() string {
	if k == KeyRelease {
		return "release"
	}
	return "press"
}

// KeyEvent is a single input event as seen by the dispatcher.
type KeyEvent struct {
	Kind KeyKind
	Key  tea.Key
}

// pressed adapts a bubbletea key message. Bubble Tea v1 only reports
// presses.
func pressed(msg tea.KeyMsg) KeyEvent {
	return KeyEvent{Kind: KeyPress, Key: tea.Key(msg)}
}

func (e KeyEvent) msg() tea.KeyMsg {
	return tea.KeyMsg(e.Key)
}
