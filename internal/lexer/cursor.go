package lexer

import (
	"fmt"
	"unicode/utf8"

	"jslex/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле: байтовое смещение плюс
// строка/колонка. Двигается только вперёд, по одной руне.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
	Pos   source.LineCol
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
		Pos:   source.Start,
	}
}

// AtEnd проверяет, достигнут ли конец файла
func (c *Cursor) AtEnd() bool {
	return c.Off >= c.Limit
}

// decode читает руну по смещению off. Невалидный UTF-8 даёт RuneError шириной 1.
func (c *Cursor) decode(off uint32) (rune, uint32) {
	b := c.File.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.File.Content[off:c.Limit])
	return r, uint32(sz) // #nosec G115 -- sz <= utf8.UTFMax
}

// Peek returns the current character without consuming it.
func (c *Cursor) Peek() (rune, error) {
	if c.AtEnd() {
		return 0, ErrEndOfInput
	}
	r, _ := c.decode(c.Off)
	return r, nil
}

// Peek2 читает текущий и следующий символ, не сдвигая курсор.
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.AtEnd() {
		return 0, 0, false
	}
	r0, sz := c.decode(c.Off)
	if c.Off+sz >= c.Limit {
		return 0, 0, false
	}
	r1, _ = c.decode(c.Off + sz)
	return r0, r1, true
}

// Advance consumes one character and returns it. A newline moves the
// position to column 1 of the next line.
func (c *Cursor) Advance() (rune, error) {
	if c.AtEnd() {
		return 0, ErrEndOfInput
	}
	r, sz := c.decode(c.Off)
	c.Off += sz
	if r == '\n' {
		c.Pos.Line++
		c.Pos.Col = 1
	} else {
		c.Pos.Col++
	}
	return r, nil
}

// AdvanceIf consumes the next character if it matches r.
func (c *Cursor) AdvanceIf(r rune) bool {
	if got, err := c.Peek(); err != nil || got != r {
		return false
	}
	_, _ = c.Advance()
	return true
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark struct {
	Off uint32
	Pos source.LineCol
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Pos: c.Pos}
}

// SpanFrom returns the byte span and the line/column range from m to the
// current position.
func (c *Cursor) SpanFrom(m Mark) (source.Span, source.Range) {
	return source.Span{
			File:  c.File.ID,
			Start: m.Off,
			End:   c.Off,
		}, source.Range{
			Start: m.Pos,
			End:   c.Pos,
		}
}
