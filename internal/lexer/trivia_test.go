package lexer_test

import (
	"testing"

	"jslex/internal/lexer"
	"jslex/internal/token"
)

func TestTrivia_LineComment(t *testing.T) {
	expectTokens(t, "a // comment\nb", id("a"), id("b"))
	expectTokens(t, "// only a comment", []want{}...)
	expectTokens(t, "a //", id("a"))
}

func TestTrivia_BlockComment(t *testing.T) {
	expectTokens(t, "a /* comment */ b", id("a"), id("b"))
	expectTokens(t, "a/**/b", id("a"), id("b"))
	expectTokens(t, "a /* multi\nline\n*/ b", id("a"), id("b"))
	expectTokens(t, "/***/", []want{}...)
}

func TestTrivia_BlockCommentDoesNotNest(t *testing.T) {
	expectTokens(t, "a /* /* */ b", id("a"), id("b"))
	expectTokens(t, "/* a /* b */ c */", id("c"), op("*"), op("/"))
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	for _, input := range []string{"/*", "/* abc", "a /* b *", "/*/"} {
		expectError(t, input, lexer.ErrUnterminatedComment)
	}
}

func TestTrivia_NotCollectedByDefault(t *testing.T) {
	tokens := expectTokens(t, "  // c\nx", id("x"))
	if tokens[0].Leading != nil {
		t.Errorf("trivia must be dropped without Options.Trivia: %+v", tokens[0].Leading)
	}
}

func TestTrivia_Mixed(t *testing.T) {
	file := makeFile("  // c\n\n/* b */ x\ty")
	lx := lexer.New(file, lexer.Options{Trivia: true})

	x, err := lx.Next()
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		kind token.TriviaKind
		text string
	}{
		{token.TriviaSpace, "  "},
		{token.TriviaLineComment, "// c"},
		{token.TriviaNewline, "\n\n"},
		{token.TriviaBlockComment, "/* b */"},
		{token.TriviaSpace, " "},
	}
	if len(x.Leading) != len(expected) {
		t.Fatalf("expected %d trivia, got %+v", len(expected), x.Leading)
	}
	for i, e := range expected {
		tr := x.Leading[i]
		if tr.Kind != e.kind || tr.Text != e.text {
			t.Errorf("trivia %d: got %v %q, want %v %q", i, tr.Kind, tr.Text, e.kind, e.text)
		}
		if got := string(file.Content[tr.Span.Start:tr.Span.End]); got != tr.Text {
			t.Errorf("trivia %d: span covers %q", i, got)
		}
	}

	y, _ := lx.Next()
	if len(y.Leading) != 1 || y.Leading[0].Kind != token.TriviaSpace || y.Leading[0].Text != "\t" {
		t.Errorf("y trivia: %+v", y.Leading)
	}
}

func TestTrivia_PeekKeepsLeading(t *testing.T) {
	lx := lexer.New(makeFile(" a"), lexer.Options{Trivia: true})
	p, _ := lx.Peek()
	n, _ := lx.Next()
	if len(p.Leading) != 1 || len(n.Leading) != 1 {
		t.Errorf("Peek and Next must see the same trivia: %+v / %+v", p.Leading, n.Leading)
	}
}
