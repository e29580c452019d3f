package lexer

import (
	"jslex/internal/diag"
)

type Options struct {
	// Reporter получает диагностику для каждой ошибки; может быть nil.
	Reporter diag.Reporter
	// Trivia keeps skipped whitespace and comments as Token.Leading.
	Trivia bool
}
