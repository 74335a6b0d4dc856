// Package app provides the Bubble Tea model that drives tabchat.
//
// Model owns the whole controller state: run state, input mode, selected
// tab, the line being composed and the message log. Each key event is
// routed by input mode. Normal mode moves between tabs, enters editing
// and quits. Editing mode feeds the text buffer and commits lines to the
// log. Rendering is delegated to package ui with a snapshot of that state.
package app
