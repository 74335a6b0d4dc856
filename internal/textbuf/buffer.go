package textbuf

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Buffer is a single line of text with a cursor.
// The zero value is an empty buffer with the cursor at 0.
type Buffer struct {
	value  string
	cursor int
}

// New returns a buffer holding s with the cursor at the end.
func New(s string) Buffer {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	return Buffer{value: s, cursor: utf8.RuneCountInString(s)}
}

// Value returns the current text.
func (b Buffer) Value() string {
	return b.value
}

// Cursor returns the cursor position in characters, always within [0, Len()].
func (b Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of characters in the buffer.
func (b Buffer) Len() int {
	return utf8.RuneCountInString(b.value)
}

// Insert puts r at the cursor and advances the cursor by one character.
// Invalid runes are stored as utf8.RuneError.
func (b *Buffer) Insert(r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	i := b.byteIndex()
	b.value = b.value[:i] + string(r) + b.value[i:]
	b.MoveRight()
}

// DeleteBeforeCursor removes the character left of the cursor.
// It is a no-op when the cursor is at 0.
func (b *Buffer) DeleteBeforeCursor() {
	if b.cursor == 0 {
		return
	}

	// Rebuild from characters rather than splicing bytes.
	runes := []rune(b.value)
	kept := make([]rune, 0, len(runes)-1)
	kept = append(kept, runes[:b.cursor-1]...)
	kept = append(kept, runes[b.cursor:]...)
	b.value = string(kept)
	b.MoveLeft()
}

// MoveLeft moves the cursor one character left, stopping at 0.
func (b *Buffer) MoveLeft() {
	b.cursor = b.clamp(b.cursor - 1)
}

// MoveRight moves the cursor one character right, stopping at Len().
func (b *Buffer) MoveRight() {
	b.cursor = b.clamp(b.cursor + 1)
}

// Clear empties the buffer and resets the cursor.
func (b *Buffer) Clear() {
	b.value = ""
	b.cursor = 0
}

// Split returns the text before the cursor, the character under it (empty
// at the end of the line) and the text after it.
func (b Buffer) Split() (before, at, after string) {
	i := b.byteIndex()
	before, rest := b.value[:i], b.value[i:]
	if rest == "" {
		return before, "", ""
	}
	_, size := utf8.DecodeRuneInString(rest)
	return before, rest[:size], rest[size:]
}

// DisplayColumn returns the terminal column of the cursor, counting wide
// glyphs as two cells and combining marks as zero.
func (b Buffer) DisplayColumn() int {
	return runewidth.StringWidth(b.value[:b.byteIndex()])
}

// byteIndex maps the character cursor onto a byte offset in value.
func (b Buffer) byteIndex() int {
	n := 0
	for i := range b.value {
		if n == b.cursor {
			return i
		}
		n++
	}
	return len(b.value)
}

func (b Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if l := b.Len(); pos > l {
		return l
	}
	return pos
}
