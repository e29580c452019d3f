package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value; the scanner never emits it.
	Invalid Kind = iota
	// KindKeyword is a reserved word; the tag is in Token.Keyword.
	KindKeyword
	// KindIdent is an identifier; its name is Token.Text.
	KindIdent
	// KindNumber is a decimal numeric literal; the value is in Token.Value.
	KindNumber
	// KindString is a quoted string literal; the decoded value is in Token.Literal.
	KindString
	// KindSymbol is an operator or punctuation; the tag is in Token.Symbol.
	KindSymbol
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	KindKeyword: "Keyword",
	KindIdent:   "Identifier",
	KindNumber:  "Number",
	KindString:  "String",
	KindSymbol:  "Symbol",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
