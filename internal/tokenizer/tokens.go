// Package tokenizer splits raw header lines using Shape's tokenizer framework.
package tokenizer

// Token type constants for header lines. A header line is "name: value";
// everything that is not a colon is a text run.
const (
	TokenColon     = "Colon"     // the name/value separator
	TokenFieldText = "FieldText" // any other run of characters
)
