// Package debug provides the optional debug log for tabchat.
//
// The terminal belongs to the UI while the program runs, so diagnostics
// go to a file instead. When enabled via the --debug flag, every
// dispatched key, mode change and commit is written there.
package debug
