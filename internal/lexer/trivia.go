package lexer

import (
	"unicode"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// skipTrivia пропускает подряд идущие пробелы и комментарии перед значимым
// токеном. С Options.Trivia они сохраняются в lx.hold:
//   - пробельные символы кроме '\n' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - //... до \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности, как в JS)
//
// Сам пробельный прогон никогда не даёт ошибку; незакрытый блочный
// комментарий: ErrUnterminatedComment.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.AtEnd() {
		start := lx.cursor.Mark()
		ch, _ := lx.cursor.Peek()

		switch {
		case ch == '\n':
			for lx.cursor.AdvanceIf('\n') {
			}
			lx.keep(token.TriviaNewline, start)

		case unicode.IsSpace(ch):
			lx.skipWhile(func(r rune) bool { return r != '\n' && unicode.IsSpace(r) })
			lx.keep(token.TriviaSpace, start)

		case ch == '/':
			_, next, ok := lx.cursor.Peek2()
			if !ok || (next != '/' && next != '*') {
				// это не комментарий: пусть сканируется как оператор '/'
				return nil
			}
			if err := lx.skipComment(start, next == '*'); err != nil {
				return err
			}

		default:
			return nil
		}
	}
	return nil
}

// //... , /*...*/
func (lx *Lexer) skipComment(start Mark, block bool) error {
	_, _ = lx.cursor.Advance()
	_, _ = lx.cursor.Advance()

	if !block {
		lx.skipWhile(func(r rune) bool { return r != '\n' })
		lx.keep(token.TriviaLineComment, start)
		return nil
	}

	for {
		if r0, r1, ok := lx.cursor.Peek2(); ok && r0 == '*' && r1 == '/' {
			_, _ = lx.cursor.Advance()
			_, _ = lx.cursor.Advance()
			lx.keep(token.TriviaBlockComment, start)
			return nil
		}
		if _, err := lx.cursor.Advance(); err != nil {
			_, ferr := lx.fail(ErrUnterminatedComment, diag.LexUnterminatedBlockComment, start, "unterminated block comment")
			return ferr
		}
	}
}

func (lx *Lexer) keep(kind token.TriviaKind, start Mark) {
	if !lx.opts.Trivia {
		return
	}
	sp, _ := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
