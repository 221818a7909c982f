package tokenizer

import (
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

func TestTokenize_HeaderLine(t *testing.T) {
	tok := NewTokenizer()
	tok.Initialize("Host: example.com")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}

	// Expect: FieldText("Host"), Colon, FieldText(" example.com")
	expected := []struct {
		kind  string
		value string
	}{
		{TokenFieldText, "Host"},
		{TokenColon, ":"},
		{TokenFieldText, " example.com"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestFieldTextMatcher_EOS(t *testing.T) {
	// Empty stream — PeekChar returns false → len(value)==0 → return nil
	matcher := FieldTextMatcher()
	stream := coretok.NewStream("")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func TestFieldTextMatcher_StartWithColon(t *testing.T) {
	matcher := FieldTextMatcher()
	stream := coretok.NewStream(": value")
	if tok := matcher(stream); tok != nil {
		t.Errorf("expected nil when starting with colon, got %v", tok)
	}
}

func TestFieldTextMatcher_StopsAtColon(t *testing.T) {
	matcher := FieldTextMatcher()
	stream := coretok.NewStream("Content-Type: text/html")

	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected a token, got nil")
	}
	if tok.ValueString() != "Content-Type" {
		t.Errorf("ValueString() = %q, want %q", tok.ValueString(), "Content-Type")
	}
}

func TestSplitField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		key   string
		value string
	}{
		{"simple", "Host: example.com", "Host", "example.com"},
		{"no space after colon", "Content-Length:42", "Content-Length", "42"},
		{"tab padding", "Accept:\ttext/html\t", "Accept", "text/html"},
		{"colon in value", "Referer: http://example.com:8080/x", "Referer", "http://example.com:8080/x"},
		{"empty value", "X-Empty:", "X-Empty", ""},
		{"value with spaces", "User-Agent: curl/8.0 (unix)", "User-Agent", "curl/8.0 (unix)"},
	}

	for _, tt := range tests {
		key, value, err := SplitField(tt.raw)
		if err != nil {
			t.Errorf("%s: SplitField(%q): unexpected error: %v", tt.name, tt.raw, err)
			continue
		}
		if key != tt.key {
			t.Errorf("%s: key = %q, want %q", tt.name, key, tt.key)
		}
		if value != tt.value {
			t.Errorf("%s: value = %q, want %q", tt.name, value, tt.value)
		}
	}
}

func TestSplitField_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no colon", "NoColonHere"},
		{"empty input", ""},
		{"empty name", ": value"},
		{"whitespace before colon", "Host : example.com"},
		{"tab before colon", "Host\t: example.com"},
	}

	for _, tt := range tests {
		if _, _, err := SplitField(tt.raw); err == nil {
			t.Errorf("%s: SplitField(%q): expected error, got none", tt.name, tt.raw)
		}
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, tok := range tokens {
		if i > 0 {
			s += ", "
		}
		s += tok.String()
	}
	s += "]"
	return s
}
