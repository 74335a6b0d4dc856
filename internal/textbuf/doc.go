// Package textbuf holds the line of text being composed in the input box.
//
// The cursor is a character index (Unicode scalar values), never a byte
// offset. All byte-level work on the underlying string happens inside the
// package, so a caller cannot place the cursor inside a multi-byte
// encoding.
package textbuf
