package lexer_test

import (
	"testing"

	"jslex/internal/diag"
	"jslex/internal/lexer"
	"jslex/internal/token"
)

func TestString_Simple(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`""`, ""},
		{`"it's"`, "it's"},
		{`'say "hi"'`, `say "hi"`},
		{`"π ∑ 😀"`, "π ∑ 😀"},
	}
	for _, tt := range tests {
		tok := expectSingleToken(t, tt.input)
		if tok.Kind != token.KindString {
			t.Errorf("%s: expected String, got %v", tt.input, tok.Kind)
			continue
		}
		if tok.Literal != tt.literal {
			t.Errorf("%s: literal %q, want %q", tt.input, tok.Literal, tt.literal)
		}
		if tok.Text != tt.input {
			t.Errorf("%s: text %q must keep the quotes", tt.input, tok.Text)
		}
	}
}

func TestString_Escapes(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"a\nb"`, "a\nb"},
		{`"\t\r\b\f\v\0"`, "\t\r\b\f\v\x00"},
		{`'it\'s'`, "it's"},
		{`"\"\\"`, `"\`},
		{`"\x41\x62"`, "Ab"},
		{`"\u0042"`, "B"},
		{`"\u{1F600}"`, "😀"},
		{`"\u{41}"`, "A"},
		{`"😀"`, "😀"},
		{`"\a\q"`, "aq"},
		{"\"a\\\nb\"", "ab"},
	}
	for _, tt := range tests {
		tok := expectSingleToken(t, tt.input)
		if tok.Literal != tt.literal {
			t.Errorf("%s: literal %q, want %q", tt.input, tok.Literal, tt.literal)
		}
	}
}

func TestString_LoneSurrogates(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"\uD83Dx"`, "�x"},
		{`"\uDE00"`, "�"},
		{`"\uD83D"`, "�"},
		{`"\uD83D😀"`, "�😀"},
	}
	for _, tt := range tests {
		tok := expectSingleToken(t, tt.input)
		if tok.Literal != tt.literal {
			t.Errorf("%s: literal %q, want %q", tt.input, tok.Literal, tt.literal)
		}
	}
}

func TestString_Unterminated(t *testing.T) {
	for _, input := range []string{`"abc`, `'abc`, `"abc\`, "\"abc\ndef\"", `"`} {
		err := expectError(t, input, lexer.ErrUnterminatedString)
		if err.Code != diag.LexUnterminatedString {
			t.Errorf("%q: expected LexUnterminatedString, got %v", input, err.Code)
		}
	}
}

func TestString_UnterminatedPointsAtQuote(t *testing.T) {
	err := expectError(t, "x = \"abc", lexer.ErrUnterminatedString)
	if err.Loc.Start.Col != 5 || err.Span.Start != 4 {
		t.Errorf("error must start at the opening quote, got %v", err.Loc.Start)
	}
}

func TestString_BadEscape(t *testing.T) {
	for _, input := range []string{`"\x4"`, `"\xZZ"`, `"\u12"`, `"\u{}"`, `"\u{110000}"`, `"\u{41"`} {
		err := expectError(t, input, lexer.ErrBadEscape)
		if err.Code != diag.LexBadEscape {
			t.Errorf("%s: expected LexBadEscape, got %v", input, err.Code)
		}
		if err.Span.Start != 1 {
			t.Errorf("%s: error must start at the backslash, got %d", input, err.Span.Start)
		}
	}
}

func TestString_InContext(t *testing.T) {
	expectTokens(t, `x = "a" + 'b';`,
		id("x"), op("="), str(`"a"`), op("+"), str(`'b'`), op(";"))
}
