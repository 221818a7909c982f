// Package charbuf provides a growable character buffer with the bounded
// random access, search and substring operations that line parsing scans
// over. It is the in-memory window handed to the parser: the parser never
// mutates it, and a message reader typically fills it once per line.
package charbuf

import (
	"fmt"

	"github.com/indigo-web/utils/uf"
)

// OutOfRangeError is the panic value raised by CharAt, Substring and
// SubstringTrimmed when an index falls outside the buffer. Parse operations
// recover it at their public boundary and re-signal it as a parse error.
type OutOfRangeError struct {
	Index int // the offending index
	Len   int // buffer length at the time of access
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("charbuf: index %d out of range [0,%d)", e.Index, e.Len)
}

// Buffer is a growable byte-backed character buffer.
//
// Substring and SubstringTrimmed return strings that alias the buffer's
// storage (zero-copy); they remain valid until the next Append. Callers that
// keep a buffer around for reuse must copy substrings they retain.
type Buffer struct {
	data []byte
}

// New creates an empty buffer with the given initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// NewString creates a buffer spanning the whole of s.
func NewString(s string) *Buffer {
	b := New(len(s))
	b.Append(s)
	return b
}

// Len returns the number of characters currently in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Append adds s to the end of the buffer.
func (b *Buffer) Append(s string) {
	b.data = append(b.data, s...)
}

// CharAt returns the character at index i. It panics with *OutOfRangeError
// if i is outside [0, Len).
func (b *Buffer) CharAt(i int) byte {
	if i < 0 || i >= len(b.data) {
		panic(&OutOfRangeError{Index: i, Len: len(b.data)})
	}
	return b.data[i]
}

// IndexOf returns the position of the first occurrence of ch in [from, to),
// or -1 if ch does not occur there. The range is clamped to the buffer.
func (b *Buffer) IndexOf(ch byte, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(b.data) {
		to = len(b.data)
	}
	if from > to {
		return -1
	}
	for i := from; i < to; i++ {
		if b.data[i] == ch {
			return i
		}
	}
	return -1
}

// Substring returns the raw characters in [from, to). It panics with
// *OutOfRangeError if the range is invalid.
func (b *Buffer) Substring(from, to int) string {
	b.checkRange(from, to)
	return uf.B2S(b.data[from:to])
}

// SubstringTrimmed returns the characters in [from, to) with leading and
// trailing HTTP whitespace (SP and HTAB) removed. It panics with
// *OutOfRangeError if the range is invalid.
func (b *Buffer) SubstringTrimmed(from, to int) string {
	b.checkRange(from, to)
	for from < to && IsWhitespace(b.data[from]) {
		from++
	}
	for to > from && IsWhitespace(b.data[to-1]) {
		to--
	}
	return uf.B2S(b.data[from:to])
}

// String returns the whole buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

func (b *Buffer) checkRange(from, to int) {
	if from < 0 || from > to {
		panic(&OutOfRangeError{Index: from, Len: len(b.data)})
	}
	if to > len(b.data) {
		panic(&OutOfRangeError{Index: to, Len: len(b.data)})
	}
}

// IsWhitespace reports whether ch is HTTP whitespace: space or horizontal
// tab. This is deliberately narrower than a Unicode whitespace test; CR and
// LF are line structure, not padding, at this layer.
func IsWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}
