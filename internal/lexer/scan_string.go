package lexer

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanString читает строку в одинарных или двойных кавычках и декодирует
// escape-последовательности в Token.Literal.
// Сырой перевод строки или конец файла до закрывающей кавычки: ошибка.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	quote, _ := lx.cursor.Advance()

	var sb strings.Builder
	var high rune // незакрытая старшая половина суррогатной пары
	flush := func() {
		if high != 0 {
			sb.WriteRune(utf8.RuneError)
			high = 0
		}
	}

	for {
		ch, err := lx.cursor.Peek()
		if err != nil || ch == '\n' {
			return lx.fail(ErrUnterminatedString, diag.LexUnterminatedString, start, "unterminated string literal")
		}
		esc := lx.cursor.Mark()
		_, _ = lx.cursor.Advance()

		switch ch {
		case quote:
			flush()
			sp, loc := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.KindString, Literal: sb.String(), Text: lx.text(sp), Span: sp, Loc: loc}, nil
		case '\\':
			r, isUnit, err := lx.scanEscape(esc)
			if err != nil {
				return token.Token{}, err
			}
			switch {
			case isUnit && utf16.IsSurrogate(r) && r < 0xDC00:
				flush()
				high = r
			case isUnit && utf16.IsSurrogate(r) && high != 0:
				sb.WriteRune(utf16.DecodeRune(high, r))
				high = 0
			case r < 0:
				// продолжение строки: ничего не пишем
			default:
				flush()
				sb.WriteRune(r)
			}
		default:
			flush()
			sb.WriteRune(ch)
		}
	}
}

// scanEscape разбирает символы после '\'. esc указывает на сам '\'.
// Возвращает руну (-1 для продолжения строки) и флаг isUnit для \uXXXX,
// которые могут оказаться половиной суррогатной пары.
func (lx *Lexer) scanEscape(esc Mark) (r rune, isUnit bool, err error) {
	ch, err := lx.cursor.Peek()
	if err != nil {
		_, err = lx.fail(ErrUnterminatedString, diag.LexUnterminatedString, esc, "unterminated string literal")
		return 0, false, err
	}
	_, _ = lx.cursor.Advance()

	switch ch {
	case 'n':
		return '\n', false, nil
	case 't':
		return '\t', false, nil
	case 'r':
		return '\r', false, nil
	case 'b':
		return '\b', false, nil
	case 'f':
		return '\f', false, nil
	case 'v':
		return '\v', false, nil
	case '0':
		return 0, false, nil
	case '\n':
		return -1, false, nil
	case 'x':
		v, ok := lx.hexDigits(2)
		if !ok {
			return lx.badEscape(esc, `\x must be followed by two hex digits`)
		}
		return v, false, nil
	case 'u':
		if lx.cursor.AdvanceIf('{') {
			v, n := rune(0), 0
			for {
				d, err := lx.cursor.Peek()
				if err != nil || !isHex(d) {
					break
				}
				_, _ = lx.cursor.Advance()
				v = v<<4 | hexVal(d)
				n++
				if v > utf8.MaxRune {
					return lx.badEscape(esc, `\u{...} code point is out of range`)
				}
			}
			if n == 0 || !lx.cursor.AdvanceIf('}') {
				return lx.badEscape(esc, `malformed \u{...} escape`)
			}
			return v, false, nil
		}
		v, ok := lx.hexDigits(4)
		if !ok {
			return lx.badEscape(esc, `\u must be followed by four hex digits`)
		}
		return v, true, nil
	default:
		// любой другой символ означает сам себя: \' \" \\ \a ...
		return ch, false, nil
	}
}

func (lx *Lexer) hexDigits(n int) (rune, bool) {
	var v rune
	for i := 0; i < n; i++ {
		d, err := lx.cursor.Peek()
		if err != nil || !isHex(d) {
			return 0, false
		}
		_, _ = lx.cursor.Advance()
		v = v<<4 | hexVal(d)
	}
	return v, true
}

func (lx *Lexer) badEscape(esc Mark, msg string) (rune, bool, error) {
	_, err := lx.fail(ErrBadEscape, diag.LexBadEscape, esc, msg)
	return 0, false, err
}
