package token

// Symbol tags operators and punctuation.
type Symbol uint8

const (
	// SymbolNone is the zero value; the scanner never emits it.
	SymbolNone Symbol = iota

	OpeningParen      // (
	ClosingParen      // )
	OpeningBoxBracket // [
	ClosingBoxBracket // ]
	OpeningBrace      // {
	ClosingBrace      // }
	Dot               // .
	Spread            // ...
	SemiColon         // ;
	Comma             // ,
	Question          // ?
	Colon             // :

	Lt // <
	Gt // >
	Le // <=
	Ge // >=
	// Assign is the plain assignment '='.
	Assign
	Eq    // ==
	SEq   // ===
	Ne    // !=
	SNe   // !==
	Arrow // =>

	Inc   // ++
	Dec   // --
	Add   // +
	Sub   // -
	Mul   // *
	Div   // /
	Mod   // %
	Pow   // **
	Shl   // <<
	Shr   // >>
	ZFShr // >>> (zero-fill)

	And        // &&
	Or         // ||
	BitwiseAnd // &
	BitwiseOr  // |
	Xor        // ^
	BitwiseNot // ~
	Not        // !

	AssignShl   // <<=
	AssignShr   // >>=
	AssignZFShr // >>>=
	AssignAdd   // +=
	AssignSub   // -=
	AssignMul   // *=
	AssignDiv   // /=
	AssignMod   // %=
	AssignPow   // **=
	AssignAnd   // &=
	AssignOr    // |=
	AssignXor   // ^=

	symbolCount
)

type symbolInfo struct {
	name  string
	spell string
}

var symbols = [symbolCount]symbolInfo{
	SymbolNone:        {"None", ""},
	OpeningParen:      {"OpeningParen", "("},
	ClosingParen:      {"ClosingParen", ")"},
	OpeningBoxBracket: {"OpeningBoxBracket", "["},
	ClosingBoxBracket: {"ClosingBoxBracket", "]"},
	OpeningBrace:      {"OpeningBrace", "{"},
	ClosingBrace:      {"ClosingBrace", "}"},
	Dot:               {"Dot", "."},
	Spread:            {"Spread", "..."},
	SemiColon:         {"SemiColon", ";"},
	Comma:             {"Comma", ","},
	Question:          {"Question", "?"},
	Colon:             {"Colon", ":"},
	Lt:                {"Lt", "<"},
	Gt:                {"Gt", ">"},
	Le:                {"Le", "<="},
	Ge:                {"Ge", ">="},
	Assign:            {"Assign", "="},
	Eq:                {"Eq", "=="},
	SEq:               {"SEq", "==="},
	Ne:                {"Ne", "!="},
	SNe:               {"SNe", "!=="},
	Arrow:             {"Arrow", "=>"},
	Inc:               {"Inc", "++"},
	Dec:               {"Dec", "--"},
	Add:               {"Add", "+"},
	Sub:               {"Sub", "-"},
	Mul:               {"Mul", "*"},
	Div:               {"Div", "/"},
	Mod:               {"Mod", "%"},
	Pow:               {"Pow", "**"},
	Shl:               {"Shl", "<<"},
	Shr:               {"Shr", ">>"},
	ZFShr:             {"ZFShr", ">>>"},
	And:               {"And", "&&"},
	Or:                {"Or", "||"},
	BitwiseAnd:        {"BitwiseAnd", "&"},
	BitwiseOr:         {"BitwiseOr", "|"},
	Xor:               {"Xor", "^"},
	BitwiseNot:        {"BitwiseNot", "~"},
	Not:               {"Not", "!"},
	AssignShl:         {"AssignShl", "<<="},
	AssignShr:         {"AssignShr", ">>="},
	AssignZFShr:       {"AssignZFShr", ">>>="},
	AssignAdd:         {"AssignAdd", "+="},
	AssignSub:         {"AssignSub", "-="},
	AssignMul:         {"AssignMul", "*="},
	AssignDiv:         {"AssignDiv", "/="},
	AssignMod:         {"AssignMod", "%="},
	AssignPow:         {"AssignPow", "**="},
	AssignAnd:         {"AssignAnd", "&="},
	AssignOr:          {"AssignOr", "|="},
	AssignXor:         {"AssignXor", "^="},
}

// String returns the tag name, e.g. "SEq".
func (s Symbol) String() string {
	if s < symbolCount {
		return symbols[s].name
	}
	return "Symbol(?)"
}

// Spelling returns the source text of the operator, e.g. "===".
func (s Symbol) Spelling() string {
	if s < symbolCount {
		return symbols[s].spell
	}
	return ""
}

// Symbols returns every valid symbol tag in declaration order.
func Symbols() []Symbol {
	out := make([]Symbol, 0, symbolCount-1)
	for s := SymbolNone + 1; s < symbolCount; s++ {
		out = append(out, s)
	}
	return out
}

// IsAssignment reports whether the symbol is '=' or a compound assignment.
func (s Symbol) IsAssignment() bool {
	return s == Assign || (s >= AssignShl && s <= AssignXor)
}
