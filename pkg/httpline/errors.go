package httpline

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-httpline/pkg/charbuf"
)

// ErrInvalidArgument marks caller errors: a nil buffer, or an index range
// violating 0 <= from <= to <= Len. These are programmer mistakes, never
// recoverable by retrying with the same inputs, and are kept distinct from
// ParseError. Test with errors.Is.
var ErrInvalidArgument = errors.New("httpline: invalid argument")

// ParseError reports a syntactic failure while scanning a line: a missing
// literal, a missing delimiter, a non-numeric token, or a scan overrun past
// the declared range. Text always carries the offending raw input.
type ParseError struct {
	Message string // what went wrong
	Text    string // the raw [from, to) substring being parsed
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("httpline: %s: %q", e.Message, e.Text)
}

func newParseError(msg string, buf *charbuf.Buffer, from, to int) *ParseError {
	return &ParseError{Message: msg, Text: buf.Substring(from, to)}
}

func newNilBufferError() error {
	return fmt.Errorf("%w: buffer may not be nil", ErrInvalidArgument)
}

// checkArgs validates the buffer and range preconditions shared by all
// range-based parse operations.
func checkArgs(buf *charbuf.Buffer, from, to int) error {
	if buf == nil {
		return newNilBufferError()
	}
	if from < 0 || from > to || to > buf.Len() {
		return fmt.Errorf("%w: index range [%d,%d) outside buffer of length %d",
			ErrInvalidArgument, from, to, buf.Len())
	}
	return nil
}

// recoverOverrun converts an OutOfRangeError escaping a scan into a
// ParseError over the original range, so an internal bounds violation never
// crosses the operation boundary as a distinct error kind. Any other panic
// is re-raised.
func recoverOverrun(msg string, buf *charbuf.Buffer, from, to int, err *error) {
	if r := recover(); r != nil {
		if _, ok := r.(*charbuf.OutOfRangeError); ok {
			*err = newParseError(msg, buf, from, to)
			return
		}
		panic(r)
	}
}
