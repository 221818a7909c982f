package httpline

import (
	"sync"

	"github.com/shapestone/shape-httpline/internal/tokenizer"
	"github.com/shapestone/shape-httpline/pkg/charbuf"
)

// HeaderValueParser is the collaborator used for deferred header-field
// resolution: it splits a raw header line into its field name and value.
// Implementations must be safe for concurrent use.
type HeaderValueParser interface {
	ParseHeaderValue(raw string) (name, value string, err error)
}

// Header is a single header field of a message head. It retains the raw
// line text; the name/value split runs at most once, on the first Name or
// Value access. A malformed line therefore surfaces as an error from those
// accessors, never from ParseHeader itself.
//
// A Header is safe for concurrent use once constructed.
type Header struct {
	buf *charbuf.Buffer
	vp  HeaderValueParser

	once  sync.Once
	name  string
	value string
	err   error
}

func newBufferedHeader(buf *charbuf.Buffer, vp HeaderValueParser) *Header {
	return &Header{buf: buf, vp: vp}
}

// Raw returns the raw header line text, exactly as buffered.
func (h *Header) Raw() string {
	return h.buf.String()
}

// Name returns the field name. The split is performed on first access.
func (h *Header) Name() (string, error) {
	h.resolve()
	return h.name, h.err
}

// Value returns the field value with optional whitespace removed. The split
// is performed on first access.
func (h *Header) Value() (string, error) {
	h.resolve()
	return h.value, h.err
}

// The raw line is immutable, so a single memoization is all the guarding
// the lazy split needs.
func (h *Header) resolve() {
	h.once.Do(func() {
		h.name, h.value, h.err = h.vp.ParseHeaderValue(h.Raw())
	})
}

// builtinValueParser is the stock splitting behavior, used when a Parser has
// no custom collaborator configured.
type builtinValueParser struct{}

func (builtinValueParser) ParseHeaderValue(raw string) (string, string, error) {
	name, value, err := tokenizer.SplitField(raw)
	if err != nil {
		return "", "", &ParseError{Message: err.Error(), Text: raw}
	}
	return name, value, nil
}
