package ui

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/henri123lemoine/tabchat/internal/mode"
	"github.com/henri123lemoine/tabchat/internal/tabs"
)

// RenderParams is the read-only snapshot of controller state drawn each frame.
type RenderParams struct {
	Run          mode.Run
	Input        mode.Input
	Tab          tabs.Tab
	Title        string
	TabTitles    []string
	Value        string
	Before       string // Value left of the cursor
	At           string // character under the cursor, "" at end of line
	After        string
	CursorColumn int // display column of the cursor
	Messages     []string
	Numbered     bool
	MessagesView string // pre-rendered scrolling pane, if any
	Help         string
	Width        int
	Height       int
	Err          error
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// chatChrome is the number of rows the chat tab uses besides the message
// lines: header, footer, help, input box (3) and the message box border
// and heading (3).
const chatChrome = 9

// tabBodies holds the static content of the tabs after the first.
var tabBodies = map[tabs.Tab]string{
	tabs.Tab2: "Welcome to tabchat! Use the first tab to post messages.",
	tabs.Tab3: "Look! I'm different than others!",
	tabs.Tab4: "I know, these are some basic changes. But I think you got the main idea.",
}

// MessagesSize returns the inner width and height of the message pane for
// a terminal of the given size.
func MessagesSize(width, height int) (int, int) {
	width, height = clampSize(width, height)
	return width - 4, max(1, height-chatChrome)
}

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Run == mode.Quitting {
		return ""
	}
	p.Width, p.Height = clampSize(p.Width, p.Height)

	var body string
	switch p.Tab {
	case tabs.Tab1:
		body = renderChat(p)
	case tabs.Tab2, tabs.Tab3, tabs.Tab4:
		body = renderTabBody(p)
	default:
		body = renderChat(p)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(p),
		body,
		renderFooter(p),
	)
}

// renderHeader renders the tab bar with the title on the right.
func renderHeader(p RenderParams) string {
	parts := make([]string, 0, len(p.TabTitles))
	for i, title := range p.TabTitles {
		if i == p.Tab.Rank() {
			parts = append(parts, SelectedTabStyle.Render(title))
		} else {
			parts = append(parts, TabStyle.Render(title))
		}
	}
	bar := strings.Join(parts, SymbolDivider)

	title := TitleStyle.Render(p.Title)
	gap := p.Width - lipgloss.Width(bar) - lipgloss.Width(title)
	if p.Title == "" || gap < 1 {
		return bar
	}
	return bar + strings.Repeat(" ", gap) + title
}

// renderChat renders the message log, the input box and the mode help.
func renderChat(p RenderParams) string {
	innerWidth, innerHeight := MessagesSize(p.Width, p.Height)

	var messages string
	switch {
	case len(p.Messages) == 0:
		messages = lipgloss.NewStyle().Height(innerHeight).
			Render(PlaceholderStyle.Render("No messages yet."))
	case p.MessagesView != "":
		messages = p.MessagesView
	default:
		messages = lipgloss.NewStyle().Height(innerHeight).MaxHeight(innerHeight).
			Render(FormatMessages(slices.All(p.Messages), p.Numbered, innerWidth))
	}
	messageBox := BoxStyle.Width(p.Width - 2).
		Render(HeaderStyle.Render("Messages") + "\n" + messages)

	inputBox := BoxStyle.Width(p.Width - 2)
	if p.Input == mode.Editing {
		inputBox = inputBox.BorderForeground(ColorWarning)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		messageBox,
		inputBox.Render(renderInput(p, innerWidth)),
		" "+p.Help,
	)
}

// renderInput renders the input line, with a cursor cell while editing.
func renderInput(p RenderParams, width int) string {
	if p.Input != mode.Editing {
		if p.Value == "" {
			return PlaceholderStyle.Render("(not editing)")
		}
		return runewidth.Truncate(p.Value, width, "…")
	}

	before, at, after := visibleInput(p.Before, p.At, p.After, p.CursorColumn, width)
	if runewidth.StringWidth(at) == 0 {
		// Nothing to highlight: end of line or a combining mark.
		before += at
		at = " "
	}
	return EditingStyle.Render(before) + CursorStyle.Render(at) + EditingStyle.Render(after)
}

// visibleInput trims the text around the cursor to width so the cursor
// cell is always on screen. column is the display width of before.
func visibleInput(before, at, after string, column, width int) (string, string, string) {
	atWidth := max(1, runewidth.StringWidth(at))
	for column+atWidth > width && before != "" {
		r, size := utf8.DecodeRuneInString(before)
		column -= runewidth.RuneWidth(r)
		before = before[size:]
	}

	after = runewidth.Truncate(after, max(0, width-column-atWidth), "")
	return before, at, after
}

// renderTabBody renders one of the static tabs.
func renderTabBody(p RenderParams) string {
	height := max(1, p.Height-4)
	return TabBodyStyle.Width(p.Width - 2).Height(height).
		Render(MessageStyle.Render(tabBodies[p.Tab]))
}

// renderFooter renders the footer, or the last error if there is one.
func renderFooter(p RenderParams) string {
	if p.Err != nil {
		return ErrorStyle.Render("Error: " + p.Err.Error())
	}
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, HelpStyle.Render(FooterText))
}

// FormatMessages renders log lines for the message pane, wrapped to width.
// A width of 0 disables wrapping.
func FormatMessages(lines iter.Seq2[int, string], numbered bool, width int) string {
	style := MessageStyle
	if width > 0 {
		style = style.Width(width)
	}

	var b strings.Builder
	for i, line := range lines {
		if numbered {
			line = fmt.Sprintf("%d: %s", i, line)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Render(line))
	}
	return b.String()
}

func clampSize(width, height int) (int, int) {
	// Graceful degradation for small terminals
	return max(width, MinWidth), max(height, MinHeight)
}
