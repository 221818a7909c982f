package httpline

import (
	"strconv"

	"github.com/shapestone/shape-httpline/pkg/charbuf"
)

// LineFormatter is the dual of LineParser: it renders head-section values
// back into their wire form by appending to a buffer. Implementations must
// be stateless, like the parser.
type LineFormatter interface {
	FormatProtocolVersion(buf *charbuf.Buffer, ver ProtocolVersion) error
	FormatRequestLine(buf *charbuf.Buffer, line RequestLine) error
	FormatStatusLine(buf *charbuf.Buffer, line StatusLine) error
	FormatHeader(buf *charbuf.Buffer, name, value string) error
}

// Formatter is the default LineFormatter implementation. The zero value is
// ready to use.
type Formatter struct{}

// DefaultFormatter is a shared, non-customized Formatter.
var DefaultFormatter = &Formatter{}

var _ LineFormatter = (*Formatter)(nil)

// FormatProtocolVersion appends the wire form of ver, e.g. "HTTP/1.1".
func (f *Formatter) FormatProtocolVersion(buf *charbuf.Buffer, ver ProtocolVersion) error {
	if buf == nil {
		return newNilBufferError()
	}
	buf.Append("HTTP/")
	buf.Append(strconv.Itoa(ver.Major))
	buf.Append(".")
	buf.Append(strconv.Itoa(ver.Minor))
	return nil
}

// FormatRequestLine appends "METHOD SP URI SP VERSION".
func (f *Formatter) FormatRequestLine(buf *charbuf.Buffer, line RequestLine) error {
	if buf == nil {
		return newNilBufferError()
	}
	buf.Append(line.Method)
	buf.Append(" ")
	buf.Append(line.URI)
	buf.Append(" ")
	return f.FormatProtocolVersion(buf, line.Version)
}

// FormatStatusLine appends "VERSION SP STATUS SP REASON". The trailing
// space before an empty reason is kept so the line re-parses to the same
// value.
func (f *Formatter) FormatStatusLine(buf *charbuf.Buffer, line StatusLine) error {
	if buf == nil {
		return newNilBufferError()
	}
	if err := f.FormatProtocolVersion(buf, line.Version); err != nil {
		return err
	}
	buf.Append(" ")
	buf.Append(strconv.Itoa(line.StatusCode))
	buf.Append(" ")
	buf.Append(line.Reason)
	return nil
}

// FormatHeader appends "Name: value".
func (f *Formatter) FormatHeader(buf *charbuf.Buffer, name, value string) error {
	if buf == nil {
		return newNilBufferError()
	}
	buf.Append(name)
	buf.Append(": ")
	buf.Append(value)
	return nil
}

// FormatRequestLine renders a request line to a string. A nil formatter
// means DefaultFormatter.
func FormatRequestLine(line RequestLine, formatter LineFormatter) string {
	if formatter == nil {
		formatter = DefaultFormatter
	}
	buf := charbuf.New(64)
	_ = formatter.FormatRequestLine(buf, line)
	return buf.String()
}

// FormatStatusLine renders a status line to a string. A nil formatter means
// DefaultFormatter.
func FormatStatusLine(line StatusLine, formatter LineFormatter) string {
	if formatter == nil {
		formatter = DefaultFormatter
	}
	buf := charbuf.New(64)
	_ = formatter.FormatStatusLine(buf, line)
	return buf.String()
}

// FormatProtocolVersion renders a version token to a string. A nil
// formatter means DefaultFormatter.
func FormatProtocolVersion(ver ProtocolVersion, formatter LineFormatter) string {
	if formatter == nil {
		formatter = DefaultFormatter
	}
	buf := charbuf.New(16)
	_ = formatter.FormatProtocolVersion(buf, ver)
	return buf.String()
}
