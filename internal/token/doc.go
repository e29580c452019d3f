// Package token defines lexical token kinds, keyword and symbol tags, and
// trivia for the jslex scanner.
// Invariants:
//   - Token.Text is the exact source slice the token was scanned from.
//   - Token.Span and Token.Loc describe the same half-open range, in bytes and
//     in line/column respectively.
//   - Exactly one payload is meaningful per Kind: Keyword for KindKeyword,
//     Symbol for KindSymbol, Value for KindNumber, Literal for KindString.
//     Identifiers carry their name in Text.
//   - Whitespace and comments never appear in the token stream; they are
//     optionally kept as Leading trivia of the next token.
package token
