package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// knownKeyNames are the multi-character key names bubbletea reports.
var knownKeyNames = []string{
	"up", "down", "left", "right",
	"home", "end", "pgup", "pgdown",
	"enter", "esc", "tab", "shift+tab",
	"backspace", "delete", "insert",
	"shift+up", "shift+down", "shift+left", "shift+right",
	"ctrl+up", "ctrl+down", "ctrl+left", "ctrl+right",
	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12",
}

// checkKeyName returns a warning for a key name bubbletea never reports,
// with a suggestion when one is close.
func checkKeyName(k string) string {
	if isKnownKey(k) {
		return ""
	}

	msg := fmt.Sprintf("unknown key %q", k)
	if suggestion := suggestKey(k); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}

func isKnownKey(k string) bool {
	if utf8.RuneCountInString(k) == 1 {
		return true
	}
	for _, name := range knownKeyNames {
		if k == name {
			return true
		}
	}
	for _, prefix := range []string{"ctrl+", "alt+"} {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			return isKnownKey(rest)
		}
	}
	return false
}

// suggestKey returns the best fuzzy match for k, or "" if nothing matches.
func suggestKey(k string) string {
	matches := fuzzy.Find(strings.ToLower(k), knownKeyNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
