package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/henri123lemoine/tabchat/internal/mode"
	"github.com/henri123lemoine/tabchat/internal/tabs"
	"github.com/henri123lemoine/tabchat/internal/textbuf"
)

func baseParams() RenderParams {
	return RenderParams{
		Run:       mode.Running,
		Input:     mode.Normal,
		Tab:       tabs.Tab1,
		Title:     "Tabchat",
		TabTitles: []string{"Tab 1", "Tab 2", "Tab 3", "Tab 4"},
		Width:     80,
		Height:    24,
	}
}

func TestRenderHeaderAndFooter(t *testing.T) {
	out := Render(baseParams())

	for _, want := range []string{"Tab 1", "Tab 4", "Tabchat", FooterText, "No messages yet."} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestRenderMessagesFallback(t *testing.T) {
	p := baseParams()
	p.Messages = []string{"hello", "world"}
	p.Numbered = true

	out := Render(p)
	if !strings.Contains(out, "0: hello") || !strings.Contains(out, "1: world") {
		t.Errorf("Expected numbered messages in output:\n%s", out)
	}

	p.Numbered = false
	out = Render(p)
	if strings.Contains(out, "0: hello") || !strings.Contains(out, "hello") {
		t.Errorf("Expected plain messages in output:\n%s", out)
	}
}

func TestRenderPrefersMessagesView(t *testing.T) {
	p := baseParams()
	p.Messages = []string{"raw"}
	p.MessagesView = "from-viewport"

	out := Render(p)
	if !strings.Contains(out, "from-viewport") {
		t.Error("Expected pre-rendered message view")
	}
	if strings.Contains(out, "0: raw") {
		t.Error("Expected raw messages not to be rendered when a view is given")
	}
}

func TestRenderOtherTab(t *testing.T) {
	p := baseParams()
	p.Tab = tabs.Tab3

	out := Render(p)
	if !strings.Contains(out, tabBodies[tabs.Tab3]) {
		t.Errorf("Expected tab 3 body in output:\n%s", out)
	}
	if strings.Contains(out, "No messages yet.") {
		t.Error("Chat pane should not be rendered on tab 3")
	}
}

func TestRenderShowsError(t *testing.T) {
	p := baseParams()
	p.Err = errors.New("disk full")

	out := Render(p)
	if !strings.Contains(out, "Error: disk full") {
		t.Error("Expected error in footer")
	}
	if strings.Contains(out, FooterText) {
		t.Error("Expected error to replace the footer text")
	}
}

func TestRenderQuittingIsEmpty(t *testing.T) {
	p := baseParams()
	p.Run = mode.Quitting

	if out := Render(p); out != "" {
		t.Errorf("Expected empty output when quitting, got %q", out)
	}
}

func TestRenderSmallTerminal(t *testing.T) {
	p := baseParams()
	p.Width = 5
	p.Height = 2

	// Should not panic and should still draw something.
	if out := Render(p); out == "" {
		t.Error("Expected output for a tiny terminal")
	}
}

func TestRenderInputModes(t *testing.T) {
	p := baseParams()
	p.Value = "draft"
	p.Before = "draft"
	p.CursorColumn = 5

	if out := Render(p); !strings.Contains(out, "draft") {
		t.Error("Expected input value in Normal mode")
	}

	p.Input = mode.Editing
	if out := Render(p); !strings.Contains(out, "draft") {
		t.Error("Expected input value in Editing mode")
	}
}

func TestMessagesSize(t *testing.T) {
	w, h := MessagesSize(80, 24)
	if w != 76 || h != 24-chatChrome {
		t.Errorf("MessagesSize(80, 24) = %d, %d", w, h)
	}

	w, h = MessagesSize(0, 0)
	if w != MinWidth-4 || h != 1 {
		t.Errorf("MessagesSize(0, 0) = %d, %d", w, h)
	}
}

func TestVisibleInput(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		cursor     int
		width      int
		wantBefore string
		wantAt     string
		wantAfter  string
	}{
		{"fits", "hello", 2, 20, "he", "l", "lo"},
		{"cursor at end", "hello", 5, 20, "hello", "", ""},
		{"scrolls left", "abcdefghij", 10, 5, "ghij", "", ""},
		{"truncates right", "abcdefghij", 0, 4, "", "a", "bcd"},
		{"wide glyphs", "日本語", 3, 5, "本語", "", ""},
		{"wide glyph under cursor", "日本語", 1, 3, "", "本", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := textbuf.New(tt.value)
			for buf.Cursor() > tt.cursor {
				buf.MoveLeft()
			}
			before, at, after := buf.Split()
			before, at, after = visibleInput(before, at, after, buf.DisplayColumn(), tt.width)
			if before != tt.wantBefore || at != tt.wantAt || after != tt.wantAfter {
				t.Errorf("visibleInput() = %q, %q, %q; want %q, %q, %q",
					before, at, after, tt.wantBefore, tt.wantAt, tt.wantAfter)
			}
		})
	}
}

func TestFormatMessages(t *testing.T) {
	got := FormatMessages(slices.All([]string{"a", "b"}), true, 0)
	if got != "0: a\n1: b" {
		t.Errorf("FormatMessages numbered = %q", got)
	}

	got = FormatMessages(slices.All([]string{"a", "b"}), false, 0)
	if got != "a\nb" {
		t.Errorf("FormatMessages plain = %q", got)
	}

	if got := FormatMessages(slices.All([]string(nil)), true, 10); got != "" {
		t.Errorf("FormatMessages(nil) = %q", got)
	}
}
