package lexer

import (
	"errors"

	"jslex/internal/source"
	"jslex/internal/token"
)

// Lexer turns one source file into a forward-only stream of tokens. It is not
// safe for concurrent use.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next классифицирует и потребляет ровно один токен.
// Пробелы и комментарии пропускаются. После конца ввода всегда возвращает
// ErrEndOfInput; любая другая ошибка: *Error.
func (lx *Lexer) Next() (token.Token, error) {
	// 1) Если есть look: вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}

	// 2) пробелы и комментарии
	if err := lx.skipTrivia(); err != nil {
		lx.hold = nil
		return token.Token{}, err
	}

	// 3) Посмотреть текущий символ и выбрать сканер
	ch, err := lx.cursor.Peek()
	if err != nil {
		lx.hold = nil
		return token.Token{}, err
	}

	var tok token.Token
	switch {
	case isIdentStart(ch):
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok, err = lx.scanNumber(lx.cursor.Mark(), "")
	case ch == '"' || ch == '\'':
		tok, err = lx.scanString()
	default:
		// всё остальное, включая '.' перед цифрой
		tok, err = lx.scanOperatorOrPunct()
	}
	if err != nil {
		lx.hold = nil
		return token.Token{}, err
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok, nil
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look != nil {
		return *lx.look, nil
	}
	tok, err := lx.Next()
	if err != nil {
		return token.Token{}, err
	}
	lx.look = &tok
	return tok, nil
}

// Unread pushes tok back so the next call to Next returns it. Only one token
// can be pending; a second Unread fails with ErrPushbackFull.
func (lx *Lexer) Unread(tok token.Token) error {
	if lx.look != nil {
		return ErrPushbackFull
	}
	lx.look = &tok
	return nil
}

// Pos returns the current line/column of the cursor.
func (lx *Lexer) Pos() source.LineCol {
	return lx.cursor.Pos
}

// All scans file to the end. On a lexical fault it returns the tokens read so
// far together with the error.
func All(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if errors.Is(err, ErrEndOfInput) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
