package token

import (
	"jslex/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Keyword Keyword
	Symbol  Symbol
	Text    string
	Value   float64
	Literal string
	Span    source.Span
	Loc     source.Range
	Leading []Trivia
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(kw Keyword) bool { return t.Kind == KindKeyword && t.Keyword == kw }

// IsSymbol reports whether the token is the given operator or punctuation.
func (t Token) IsSymbol(s Symbol) bool { return t.Kind == KindSymbol && t.Symbol == s }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == KindIdent }

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case KindNumber, KindString:
		return true
	default:
		return false
	}
}

// Detail returns the kind-specific payload as text: keyword spelling,
// identifier name, number, decoded string, or symbol tag.
func (t Token) Detail() string {
	switch t.Kind {
	case KindKeyword:
		return t.Keyword.String()
	case KindSymbol:
		return t.Symbol.String()
	case KindString:
		return t.Literal
	default:
		return t.Text
	}
}
