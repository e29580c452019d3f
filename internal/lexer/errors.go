package lexer

import (
	"errors"
	"fmt"
	"io"

	"jslex/internal/diag"
	"jslex/internal/source"
	"jslex/internal/token"
)

// ErrEndOfInput signals that the source is exhausted. It is io.EOF so pull
// loops can use the usual idiom.
var ErrEndOfInput = io.EOF

var (
	ErrMalformedNumber       = errors.New("malformed number")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	ErrUnterminatedString    = errors.New("unterminated string literal")
	ErrBadEscape             = errors.New("bad escape sequence")
	ErrUnterminatedComment   = errors.New("unterminated block comment")
	ErrPushbackFull          = errors.New("pushback slot already occupied")
)

// Error is a lexical fault at a source location. It unwraps to one of the
// Err* sentinels.
type Error struct {
	Err  error
	Code diag.Code
	Span source.Span
	Loc  source.Range
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Loc.Start.Line, e.Loc.Start.Col, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// fail строит *Error от метки до текущей позиции и отдаёт его Reporter'у.
func (lx *Lexer) fail(sentinel error, code diag.Code, from Mark, msg string) (token.Token, error) {
	sp, loc := lx.cursor.SpanFrom(from)
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
	return token.Token{}, &Error{Err: sentinel, Code: code, Span: sp, Loc: loc, Msg: msg}
}
