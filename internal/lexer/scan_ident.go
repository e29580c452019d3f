package lexer

import (
	"jslex/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	_, _ = lx.cursor.Advance() // первый символ уже проверен диспетчером
	lx.skipWhile(isIdentContinue)

	sp, loc := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.KindKeyword, Keyword: kw, Text: text, Span: sp, Loc: loc}
	}
	return token.Token{Kind: token.KindIdent, Text: text, Span: sp, Loc: loc}
}
