package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

// Начало идентификатора: только ASCII буква, '_' или '$'.
func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// Продолжение: любая буква или цифра Unicode, '_' или '$'.
func isIdentContinue(r rune) bool {
	if r < 0x80 {
		return isIdentStart(r) || isDec(r)
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

// skipWhile потребляет символы, пока pred истинен.
func (lx *Lexer) skipWhile(pred func(rune) bool) {
	for {
		r, err := lx.cursor.Peek()
		if err != nil || !pred(r) {
			return
		}
		_, _ = lx.cursor.Advance()
	}
}
