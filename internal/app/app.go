package app

import (
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/tabchat/internal/config"
	"github.com/henri123lemoine/tabchat/internal/debug"
	"github.com/henri123lemoine/tabchat/internal/mode"
	"github.com/henri123lemoine/tabchat/internal/msglog"
	"github.com/henri123lemoine/tabchat/internal/tabs"
	"github.com/henri123lemoine/tabchat/internal/textbuf"
	"github.com/henri123lemoine/tabchat/internal/ui"
)

// Recorder persists committed lines.
type Recorder interface {
	Record(line string) error
}

// Model is the main application model.
type Model struct {
	// Configuration
	config   *config.Config
	recorder Recorder

	// State
	run      mode.Run
	input    mode.Input
	tab      tabs.Tab
	buffer   textbuf.Buffer
	messages msglog.Log
	err      error

	// UI
	width    int
	height   int
	keys     KeyMap
	editKeys EditKeyMap
	help     help.Model
	viewport viewport.Model
}

// New creates a new Model. recorder may be nil; history seeds the message
// log in order.
func New(cfg *config.Config, recorder Recorder, history []string) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	w, h := ui.MessagesSize(0, 0)
	m := Model{
		config:   cfg,
		recorder: recorder,
		run:      mode.Running,
		input:    mode.Normal,
		tab:      tabs.Tab1,
		messages: msglog.New(history...),
		keys:     KeyMapFromConfig(&cfg.Keys),
		editKeys: DefaultEditKeyMap(),
		help:     help.New(),
		viewport: viewport.New(w, h),
	}
	m.viewport.MouseWheelEnabled = cfg.UI.Mouse
	m.refreshMessages()
	m.viewport.GotoBottom()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Quitting is terminal
	if m.run == mode.Quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.dispatch(pressed(msg))

	case tea.MouseMsg:
		if m.tab != tabs.Tab1 {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// dispatch routes one key event by input mode.
func (m Model) dispatch(ev KeyEvent) (Model, tea.Cmd) {
	if ev.Kind != KeyPress {
		debug.Log("ignore %s %q", ev.Kind, ev.Key.String())
		return m, nil
	}

	msg := ev.msg()
	debug.Log("key %q in %s mode", msg.String(), m.input)

	if key.Matches(msg, m.keys.Interrupt) {
		return m.quit()
	}

	switch m.input {
	case mode.Normal:
		return m.handleNormalKeys(msg)
	case mode.Editing:
		return m.handleEditingKeys(msg)
	}
	return m, nil
}

// handleNormalKeys handles commands in Normal mode. Unbound keys do nothing.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.setMode(mode.Editing)
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NextTab):
		m.tab = m.tab.Next()
		debug.Log("tab -> %s", m.tab)
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = m.tab.Previous()
		debug.Log("tab -> %s", m.tab)
	}
	return m, nil
}

// handleEditingKeys handles line editing. Left and right move the text
// cursor here, not the tab selection.
func (m Model) handleEditingKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Commit):
		m.commit()
	case key.Matches(msg, m.editKeys.Backspace):
		m.buffer.DeleteBeforeCursor()
	case key.Matches(msg, m.editKeys.Left):
		m.buffer.MoveLeft()
	case key.Matches(msg, m.editKeys.Right):
		m.buffer.MoveRight()
	case key.Matches(msg, m.editKeys.Leave):
		m.setMode(mode.Normal)
	default:
		m.insert(msg)
	}
	return m, nil
}

// insert types the printable runes of msg. Pastes arrive as one message.
func (m *Model) insert(msg tea.KeyMsg) {
	if msg.Alt {
		return
	}

	switch msg.Type {
	case tea.KeySpace:
		m.buffer.Insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.buffer.Insert(r)
			}
		}
	}
}

// commit moves the input line into the message log.
func (m *Model) commit() {
	line := m.buffer.Value()
	m.messages.Append(line)
	m.buffer.Clear()
	debug.Log("commit #%d (%d chars)", m.messages.Len()-1, len([]rune(line)))

	if m.recorder != nil {
		if err := m.recorder.Record(line); err != nil {
			debug.Log("transcript: %v", err)
			m.err = err
		} else {
			m.err = nil
		}
	}

	m.refreshMessages()
	m.viewport.GotoBottom()
}

func (m *Model) setMode(next mode.Input) {
	debug.Log("mode %s -> %s", m.input, next)
	m.input = next
}

func (m Model) quit() (Model, tea.Cmd) {
	debug.Log("run %s -> %s", m.run, mode.Quitting)
	m.run = mode.Quitting
	return m, tea.Quit
}

// resize fits the message pane and help line to the terminal.
func (m *Model) resize() {
	w, h := ui.MessagesSize(m.width, m.height)
	atBottom := m.viewport.AtBottom()
	m.viewport.Width = w
	m.viewport.Height = h
	m.help.Width = m.width
	m.refreshMessages()
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) refreshMessages() {
	m.viewport.SetContent(ui.FormatMessages(m.messages.All(), m.config.UI.NumberMessages, m.viewport.Width))
}

// Snapshot returns the state handed to the renderer.
func (m Model) Snapshot() ui.RenderParams {
	titles := make([]string, 0, tabs.Count)
	for _, t := range tabs.All() {
		titles = append(titles, m.config.TabTitle(t))
	}

	var helpView string
	switch m.input {
	case mode.Normal:
		helpView = m.help.View(m.keys)
	case mode.Editing:
		helpView = m.help.View(m.editKeys)
	}

	before, at, after := m.buffer.Split()

	return ui.RenderParams{
		Run:          m.run,
		Input:        m.input,
		Tab:          m.tab,
		Title:        m.config.General.Title,
		TabTitles:    titles,
		Value:        m.buffer.Value(),
		Before:       before,
		At:           at,
		After:        after,
		CursorColumn: m.buffer.DisplayColumn(),
		Messages:     m.messages.Lines(),
		Numbered:     m.config.UI.NumberMessages,
		MessagesView: m.viewport.View(),
		Help:         helpView,
		Width:        m.width,
		Height:       m.height,
		Err:          m.err,
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.run == mode.Quitting {
		return ""
	}
	return ui.Render(m.Snapshot())
}

// ShouldQuit returns true once the run state is Quitting.
func (m Model) ShouldQuit() bool {
	return m.run == mode.Quitting
}

// Mode returns the current input mode.
func (m Model) Mode() mode.Input {
	return m.input
}

// Tab returns the selected tab.
func (m Model) Tab() tabs.Tab {
	return m.tab
}

// Input returns the line being composed.
func (m Model) Input() textbuf.Buffer {
	return m.buffer
}

// Messages returns the committed lines in order.
func (m Model) Messages() []string {
	return m.messages.Lines()
}
