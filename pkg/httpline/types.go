// Package httpline tokenizes the textual head constructs of an HTTP/1.x
// message — the request line, the status line, the protocol-version token
// and a header line — from an in-memory character window.
//
// The package performs no I/O. A higher-level message reader supplies
// already-buffered line text (as a charbuf.Buffer plus a [from, to) range)
// and receives back structured line values.
//
// # Thread Safety
//
// A Parser holds no mutable state: every output is a pure function of the
// buffer content and the supplied range. A single instance — including the
// shared Default — may be used from any number of goroutines concurrently
// with no locking. The buffer itself must not be mutated while a parse call
// is in flight; that is a caller obligation.
//
// # Parsing APIs
//
// The package provides two parsing paths:
//
//   - Parser methods — range-based parsing over a charbuf.Buffer
//   - ParseRequestLine/ParseStatusLine/... free functions — convenience
//     forms that wrap a string in a fresh buffer and use Default when no
//     parser is supplied
package httpline

import (
	"fmt"

	"github.com/shapestone/shape-httpline/pkg/charbuf"
)

// ProtocolVersion is an HTTP protocol version such as HTTP/1.1. It is an
// immutable value; compare with ==.
type ProtocolVersion struct {
	Major int
	Minor int
}

// String returns the wire form of the version, e.g. "HTTP/1.1".
func (v ProtocolVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// Compare returns a negative number, zero, or a positive number as v is
// lower than, equal to, or higher than other.
func (v ProtocolVersion) Compare(other ProtocolVersion) int {
	if d := v.Major - other.Major; d != 0 {
		return d
	}
	return v.Minor - other.Minor
}

// GreaterEquals reports whether v is at least other.
func (v ProtocolVersion) GreaterEquals(other ProtocolVersion) bool {
	return v.Compare(other) >= 0
}

// RequestLine is the first line of an HTTP request: method, request target
// and protocol version.
type RequestLine struct {
	Method  string
	URI     string
	Version ProtocolVersion
}

// String returns the wire form of the request line.
func (l RequestLine) String() string {
	return l.Method + " " + l.URI + " " + l.Version.String()
}

// StatusLine is the first line of an HTTP response. Reason may be empty; it
// is never "absent".
type StatusLine struct {
	Version    ProtocolVersion
	StatusCode int
	Reason     string
}

// String returns the wire form of the status line.
func (l StatusLine) String() string {
	return fmt.Sprintf("%s %d %s", l.Version, l.StatusCode, l.Reason)
}

// SkipWhitespace advances index across a maximal run of HTTP whitespace
// (SP and HTAB), stopping at the first non-whitespace character or at the
// end of the buffer. It is a no-op when the character at index is not
// whitespace.
func SkipWhitespace(buf *charbuf.Buffer, index int) int {
	return skipWhitespace(buf, index, buf.Len())
}

func skipWhitespace(buf *charbuf.Buffer, index, limit int) int {
	for index < limit && charbuf.IsWhitespace(buf.CharAt(index)) {
		index++
	}
	return index
}
