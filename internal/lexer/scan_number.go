package lexer

import (
	"strconv"
	"strings"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanNumber читает десятичные цифры и не больше одной точки.
// prefix: уже потреблённая часть литерала ("" или "." из scanOperatorOrPunct),
// start указывает на её начало.
// Экспоненты, 0x/0o/0b и разделители '_' не поддерживаются: такие символы
// остаются для следующего вызова.
func (lx *Lexer) scanNumber(start Mark, prefix string) (token.Token, error) {
	dots := strings.Count(prefix, ".")
	for {
		ch, err := lx.cursor.Peek()
		if err != nil {
			break
		}
		if ch == '.' {
			if dots > 0 {
				// вторая точка не потребляется
				return lx.fail(ErrMalformedNumber, diag.LexBadNumber, start, "number has more than one decimal point")
			}
			dots++
		} else if !isDec(ch) {
			break
		}
		_, _ = lx.cursor.Advance()
	}

	sp, loc := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return lx.fail(ErrMalformedNumber, diag.LexBadNumber, start, "cannot parse number "+strconv.Quote(text))
	}
	return token.Token{Kind: token.KindNumber, Value: value, Text: text, Span: sp, Loc: loc}, nil
}
