// Package msglog holds the append-only list of committed lines.
package msglog

import "iter"

// Log is an ordered, append-only sequence of lines.
// The zero value is an empty log ready to use.
type Log struct {
	lines []string
}

// New returns a log seeded with lines, in order.
func New(lines ...string) Log {
	l := Log{}
	for _, line := range lines {
		l.Append(line)
	}
	return l
}

// Append adds line to the end of the log. Copies of a Log never share
// storage past their own length, so appending to one copy leaves the others
// unchanged.
func (l *Log) Append(line string) {
	l.lines = append(l.lines[:len(l.lines):len(l.lines)], line)
}

// Len returns the number of lines.
func (l Log) Len() int {
	return len(l.lines)
}

// Lines returns a copy of the lines in insertion order.
func (l Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// All iterates over the lines in insertion order with their index.
func (l Log) All() iter.Seq2[int, string] {
	lines := l.lines[:len(l.lines):len(l.lines)]
	return func(yield func(int, string) bool) {
		for i, line := range lines {
			if !yield(i, line) {
				return
			}
		}
	}
}
