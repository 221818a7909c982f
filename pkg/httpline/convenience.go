package httpline

import "github.com/shapestone/shape-httpline/pkg/charbuf"

// The convenience entry points wrap a string into a fresh buffer spanning
// the whole text and delegate to a parser instance. A nil parser means
// Default. They carry no state of their own.

// ParseProtocolVersion parses an HTTP version token from a string.
func ParseProtocolVersion(value string, parser LineParser) (ProtocolVersion, error) {
	if parser == nil {
		parser = Default
	}
	buf := charbuf.NewString(value)
	return parser.ParseProtocolVersion(buf, 0, buf.Len())
}

// ParseRequestLine parses a request line from a string.
func ParseRequestLine(value string, parser LineParser) (RequestLine, error) {
	if parser == nil {
		parser = Default
	}
	buf := charbuf.NewString(value)
	return parser.ParseRequestLine(buf, 0, buf.Len())
}

// ParseStatusLine parses a status line from a string.
func ParseStatusLine(value string, parser LineParser) (StatusLine, error) {
	if parser == nil {
		parser = Default
	}
	buf := charbuf.NewString(value)
	return parser.ParseStatusLine(buf, 0, buf.Len())
}

// ParseHeader wraps a raw header line from a string. The name/value split
// is deferred to the first access on the returned Header.
func ParseHeader(value string, parser LineParser) (*Header, error) {
	if parser == nil {
		parser = Default
	}
	return parser.ParseHeader(charbuf.NewString(value))
}
