package httpline

import (
	"strconv"

	"github.com/shapestone/shape-httpline/pkg/charbuf"
)

// LineParser is the capability for parsing the head-section lines of an
// HTTP/1.x message out of a buffer window. Implementations must be
// stateless: a single instance is expected to be shared across goroutines.
type LineParser interface {
	// ParseProtocolVersion parses an HTTP version token out of [from, to).
	ParseProtocolVersion(buf *charbuf.Buffer, from, to int) (ProtocolVersion, error)

	// HasProtocolVersion is a cheap lookahead: it checks for the "HTTP"
	// literal without parsing the full version token. index < 0 checks the
	// trailing 8 characters of the buffer with no tolerance for trailing
	// whitespace; index == 0 checks from the start after skipping leading
	// whitespace; index > 0 checks at exactly that position.
	HasProtocolVersion(buf *charbuf.Buffer, index int) bool

	// ParseRequestLine parses "METHOD SP URI SP VERSION" out of [from, to).
	ParseRequestLine(buf *charbuf.Buffer, from, to int) (RequestLine, error)

	// ParseStatusLine parses "VERSION SP STATUS [SP REASON]" out of [from, to).
	ParseStatusLine(buf *charbuf.Buffer, from, to int) (StatusLine, error)

	// ParseHeader wraps a raw header line. The name/value split is deferred
	// to the first access on the returned Header.
	ParseHeader(buf *charbuf.Buffer) (*Header, error)
}

// VersionFactory builds the ProtocolVersion value from its parsed fields.
// Overriding it is the hook for adding validation or normalization.
type VersionFactory func(major, minor int) (ProtocolVersion, error)

// RequestLineFactory builds the RequestLine value once all three fields are
// fully parsed.
type RequestLineFactory func(method, uri string, version ProtocolVersion) (RequestLine, error)

// StatusLineFactory builds the StatusLine value from its parsed fields.
type StatusLineFactory func(version ProtocolVersion, status int, reason string) (StatusLine, error)

// Parser is the default LineParser implementation.
//
// The zero value is ready to use. The factory fields are the construction
// hooks: when nil, plain value holders are returned. ValueParser supplies
// the collaborator for deferred header name/value resolution; nil means the
// built-in splitting behavior. Configure a Parser at construction and do
// not modify it afterwards; a configured instance is immutable and safe for
// concurrent use.
type Parser struct {
	NewProtocolVersion VersionFactory
	NewRequestLine     RequestLineFactory
	NewStatusLine      StatusLineFactory
	ValueParser        HeaderValueParser
}

// Default is a shared, non-customized Parser for use as a default or
// fallback. Parser is not a singleton; this instance merely provides the
// stock behavior for callers that do not need their own.
var Default = &Parser{}

var _ LineParser = (*Parser)(nil)

// ParseProtocolVersion parses an HTTP version token such as "HTTP/1.1" out
// of [from, to), tolerating whitespace around the literal and around the
// major and minor numbers.
func (p *Parser) ParseProtocolVersion(buf *charbuf.Buffer, from, to int) (ver ProtocolVersion, err error) {
	if err = checkArgs(buf, from, to); err != nil {
		return ver, err
	}
	defer recoverOverrun("invalid HTTP version string", buf, from, to, &err)

	i := skipWhitespace(buf, from, to)
	if i+5 > to ||
		buf.CharAt(i) != 'H' ||
		buf.CharAt(i+1) != 'T' ||
		buf.CharAt(i+2) != 'T' ||
		buf.CharAt(i+3) != 'P' ||
		buf.CharAt(i+4) != '/' {
		return ver, newParseError("not a valid HTTP version string", buf, from, to)
	}
	i += 5

	period := buf.IndexOf('.', i, to)
	if period < 0 {
		return ver, newParseError("invalid HTTP version number", buf, from, to)
	}
	major, convErr := strconv.Atoi(buf.SubstringTrimmed(i, period))
	if convErr != nil || major < 0 {
		return ver, newParseError("invalid HTTP major version number", buf, from, to)
	}
	minor, convErr := strconv.Atoi(buf.SubstringTrimmed(period+1, to))
	if convErr != nil || minor < 0 {
		return ver, newParseError("invalid HTTP minor version number", buf, from, to)
	}
	return p.newProtocolVersion(major, minor)
}

// HasProtocolVersion implements the LineParser lookahead contract. Only the
// 4-character "HTTP" literal is checked, and at least 8 characters must
// remain from the resolved position to the end of the buffer.
func (p *Parser) HasProtocolVersion(buf *charbuf.Buffer, index int) bool {
	if buf == nil {
		return false
	}
	if buf.Len() < 8 {
		return false // not long enough for "HTTP/1.1"
	}

	switch {
	case index < 0:
		// end of line, no tolerance for trailing whitespace
		index = buf.Len() - 8
	case index == 0:
		// beginning of line, tolerate leading whitespace
		index = SkipWhitespace(buf, 0)
	}
	// within line: the position is taken as given

	if index+8 > buf.Len() {
		return false
	}

	// just check for the protocol name, no need to analyse the version
	return buf.CharAt(index) == 'H' &&
		buf.CharAt(index+1) == 'T' &&
		buf.CharAt(index+2) == 'T' &&
		buf.CharAt(index+3) == 'P'
}

// ParseRequestLine parses a request line out of [from, to). The method and
// URI tokens end at the first and second literal space; the remainder is the
// protocol-version region.
func (p *Parser) ParseRequestLine(buf *charbuf.Buffer, from, to int) (line RequestLine, err error) {
	if err = checkArgs(buf, from, to); err != nil {
		return line, err
	}
	defer recoverOverrun("invalid request line", buf, from, to, &err)

	i := skipWhitespace(buf, from, to)
	blank := buf.IndexOf(' ', i, to)
	if blank < 0 {
		return line, newParseError("invalid request line", buf, from, to)
	}
	method := buf.SubstringTrimmed(i, blank)

	i = skipWhitespace(buf, blank, to)
	blank = buf.IndexOf(' ', i, to)
	if blank < 0 {
		return line, newParseError("invalid request line", buf, from, to)
	}
	uri := buf.SubstringTrimmed(i, blank)

	ver, verErr := p.ParseProtocolVersion(buf, blank, to)
	if verErr != nil {
		// sub-parse failures reference the full original range
		return line, newParseError("invalid request line", buf, from, to)
	}
	return p.newRequestLine(method, uri, ver)
}

// ParseStatusLine parses a status line out of [from, to). When no space
// follows the status code, the code region extends to the end of the range
// and the reason phrase is empty. The reason phrase keeps its trailing
// whitespace verbatim; only the whitespace separating it from the status
// code is consumed.
func (p *Parser) ParseStatusLine(buf *charbuf.Buffer, from, to int) (line StatusLine, err error) {
	if err = checkArgs(buf, from, to); err != nil {
		return line, err
	}
	defer recoverOverrun("invalid status line", buf, from, to, &err)

	// the HTTP-Version
	i := skipWhitespace(buf, from, to)
	blank := buf.IndexOf(' ', i, to)
	if blank <= 0 {
		return line, newParseError("unable to parse HTTP version from status line", buf, from, to)
	}
	ver, verErr := p.ParseProtocolVersion(buf, i, blank)
	if verErr != nil {
		return line, newParseError("unable to parse HTTP version from status line", buf, from, to)
	}

	// the Status-Code
	i = skipWhitespace(buf, blank, to)
	blank = buf.IndexOf(' ', i, to)
	if blank < 0 {
		blank = to
	}
	code, convErr := strconv.Atoi(buf.SubstringTrimmed(i, blank))
	if convErr != nil {
		return line, newParseError("unable to parse status code from status line", buf, from, to)
	}

	// the Reason-Phrase: raw to the end of the range, trailing whitespace
	// preserved verbatim
	reason := ""
	if i = skipWhitespace(buf, blank, to); i < to {
		reason = buf.Substring(i, to)
	}
	return p.newStatusLine(ver, code, reason)
}

// ParseHeader wraps the buffer into a Header. Construction always succeeds;
// the name/value split — and any malformed-header failure — is deferred to
// the first Name or Value access, using the parser's header-value
// collaborator. Most headers are only ever inspected by name, so the value
// is not tokenized until actually needed.
func (p *Parser) ParseHeader(buf *charbuf.Buffer) (*Header, error) {
	if buf == nil {
		return nil, newNilBufferError()
	}
	return newBufferedHeader(buf, p.headerValueParser()), nil
}

func (p *Parser) newProtocolVersion(major, minor int) (ProtocolVersion, error) {
	if p.NewProtocolVersion != nil {
		return p.NewProtocolVersion(major, minor)
	}
	return ProtocolVersion{Major: major, Minor: minor}, nil
}

func (p *Parser) newRequestLine(method, uri string, ver ProtocolVersion) (RequestLine, error) {
	if p.NewRequestLine != nil {
		return p.NewRequestLine(method, uri, ver)
	}
	return RequestLine{Method: method, URI: uri, Version: ver}, nil
}

func (p *Parser) newStatusLine(ver ProtocolVersion, status int, reason string) (StatusLine, error) {
	if p.NewStatusLine != nil {
		return p.NewStatusLine(ver, status, reason)
	}
	return StatusLine{Version: ver, StatusCode: status, Reason: reason}, nil
}

func (p *Parser) headerValueParser() HeaderValueParser {
	if p.ValueParser != nil {
		return p.ValueParser
	}
	return builtinValueParser{}
}
