package lexer

import (
	"fmt"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanOperatorOrPunct потребляет один символ и жадно расширяет его через
// AdvanceIf: всегда выбирается самый длинный оператор.
// Неизвестный символ: ErrUnrecognizedCharacter.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	start := lx.cursor.Mark()
	ch, err := lx.cursor.Advance()
	if err != nil {
		return token.Token{}, err
	}

	var sym token.Symbol
	switch ch {
	case '(':
		sym = token.OpeningParen
	case ')':
		sym = token.ClosingParen
	case '[':
		sym = token.OpeningBoxBracket
	case ']':
		sym = token.ClosingBoxBracket
	case '{':
		sym = token.OpeningBrace
	case '}':
		sym = token.ClosingBrace
	case ';':
		sym = token.SemiColon
	case ',':
		sym = token.Comma
	case '?':
		sym = token.Question
	case ':':
		sym = token.Colon
	case '~':
		sym = token.BitwiseNot

	case '=': // = == === =>
		switch {
		case lx.cursor.AdvanceIf('='):
			sym = lx.either('=', token.SEq, token.Eq)
		case lx.cursor.AdvanceIf('>'):
			sym = token.Arrow
		default:
			sym = token.Assign
		}
	case '!': // ! != !==
		sym = token.Not
		if lx.cursor.AdvanceIf('=') {
			sym = lx.either('=', token.SNe, token.Ne)
		}
	case '+': // + ++ +=
		switch {
		case lx.cursor.AdvanceIf('+'):
			sym = token.Inc
		default:
			sym = lx.either('=', token.AssignAdd, token.Add)
		}
	case '-': // - -- -=
		switch {
		case lx.cursor.AdvanceIf('-'):
			sym = token.Dec
		default:
			sym = lx.either('=', token.AssignSub, token.Sub)
		}
	case '*': // * ** **= *=
		if lx.cursor.AdvanceIf('*') {
			sym = lx.either('=', token.AssignPow, token.Pow)
		} else {
			sym = lx.either('=', token.AssignMul, token.Mul)
		}
	case '/': // комментарии уже сняты в skipTrivia
		sym = lx.either('=', token.AssignDiv, token.Div)
	case '%':
		sym = lx.either('=', token.AssignMod, token.Mod)
	case '^':
		sym = lx.either('=', token.AssignXor, token.Xor)
	case '<': // < << <<= <=
		if lx.cursor.AdvanceIf('<') {
			sym = lx.either('=', token.AssignShl, token.Shl)
		} else {
			sym = lx.either('=', token.Le, token.Lt)
		}
	case '>': // > >> >>> >>>= >>= >=
		switch {
		case lx.cursor.AdvanceIf('>'):
			if lx.cursor.AdvanceIf('>') {
				sym = lx.either('=', token.AssignZFShr, token.ZFShr)
			} else {
				sym = lx.either('=', token.AssignShr, token.Shr)
			}
		default:
			sym = lx.either('=', token.Ge, token.Gt)
		}
	case '&': // & && &=
		if lx.cursor.AdvanceIf('&') {
			sym = token.And
		} else {
			sym = lx.either('=', token.AssignAnd, token.BitwiseAnd)
		}
	case '|': // | || |=
		if lx.cursor.AdvanceIf('|') {
			sym = token.Or
		} else {
			sym = lx.either('=', token.AssignOr, token.BitwiseOr)
		}
	case '.': // . ... .5
		// ".." без третьей точки: это две Dot, поэтому смотрим на два символа вперёд
		if r0, r1, ok := lx.cursor.Peek2(); ok && r0 == '.' && r1 == '.' {
			_, _ = lx.cursor.Advance()
			_, _ = lx.cursor.Advance()
			sym = token.Spread
		} else if r, err := lx.cursor.Peek(); err == nil && isDec(r) {
			return lx.scanNumber(start, ".")
		} else {
			sym = token.Dot
		}
	default:
		return lx.fail(ErrUnrecognizedCharacter, diag.LexUnknownChar, start,
			fmt.Sprintf("unexpected character %q", ch))
	}

	sp, loc := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.KindSymbol, Symbol: sym, Text: lx.text(sp), Span: sp, Loc: loc}, nil
}

// either потребляет next и возвращает then, если он следующий; иначе otherwise.
func (lx *Lexer) either(next rune, then, otherwise token.Symbol) token.Symbol {
	if lx.cursor.AdvanceIf(next) {
		return then
	}
	return otherwise
}
