package tokenizer

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for a single raw header line.
//
// Only two matchers are needed: the colon separator and a generic text run
// that stops at a colon. Spaces stay inside the runs — header values keep
// their internal whitespace, and whitespace validation around the colon
// happens in SplitField, not here. The default whitespace skipper is not
// used because whitespace is significant.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		FieldTextMatcher(),
	)
}

// FieldTextMatcher matches any run of characters up to a colon or EOS.
func FieldTextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == ':' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenFieldText, value)
	}
}

// SplitField splits a raw header line "Name: value" at its first colon and
// returns the name and the OWS-trimmed value.
//
// Per RFC 9112 the field name must be non-empty and no whitespace is
// allowed between the name and the colon. Colons inside the value are
// preserved.
func SplitField(raw string) (name, value string, err error) {
	tok := NewTokenizer()
	tok.Initialize(raw)
	tokens, _ := tok.Tokenize()

	colon := -1
	for i, t := range tokens {
		if t.Kind() == TokenColon {
			colon = i
			break
		}
	}
	if colon < 0 {
		return "", "", fmt.Errorf("malformed header line (no colon)")
	}
	if colon == 0 {
		return "", "", fmt.Errorf("malformed header line (empty field name)")
	}

	// The text matcher consumes maximal runs, so exactly one token precedes
	// the first colon.
	name = tokens[0].ValueString()
	if last := name[len(name)-1]; last == ' ' || last == '\t' {
		return "", "", fmt.Errorf("whitespace before colon in header name")
	}

	var rest strings.Builder
	for _, t := range tokens[colon+1:] {
		rest.WriteString(t.ValueString())
	}
	return name, trimOWS(rest.String()), nil
}

// trimOWS trims optional whitespace (SP and HTAB) from both ends of s.
func trimOWS(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
