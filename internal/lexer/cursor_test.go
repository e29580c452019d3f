package lexer

import (
	"errors"
	"testing"

	"jslex/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	want := []struct {
		r   rune
		pos source.LineCol
	}{
		{'a', source.LineCol{Line: 1, Col: 2}},
		{'\n', source.LineCol{Line: 2, Col: 1}},
		{'b', source.LineCol{Line: 2, Col: 2}},
	}
	for i, w := range want {
		if cursor.AtEnd() {
			t.Fatalf("step %d: unexpected end", i)
		}
		if r, err := cursor.Peek(); err != nil || r != w.r {
			t.Fatalf("step %d: Peek = %q, %v; want %q", i, r, err, w.r)
		}
		r, err := cursor.Advance()
		if err != nil || r != w.r {
			t.Fatalf("step %d: Advance = %q, %v; want %q", i, r, err, w.r)
		}
		if cursor.Pos != w.pos {
			t.Errorf("step %d: pos %+v, want %+v", i, cursor.Pos, w.pos)
		}
	}

	if !cursor.AtEnd() {
		t.Fatal("Expected end of input")
	}
	if _, err := cursor.Peek(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("Peek at end: %v", err)
	}
	if _, err := cursor.Advance(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("Advance at end: %v", err)
	}
	if cursor.Off != 3 {
		t.Errorf("Advance at end must not move the cursor, Off=%d", cursor.Off)
	}
}

func TestAdvanceMultiByte(t *testing.T) {
	cursor := NewCursor(createFile("π€x"))
	for _, want := range []rune{'π', '€', 'x'} {
		r, err := cursor.Advance()
		if err != nil || r != want {
			t.Fatalf("Advance = %q, %v; want %q", r, err, want)
		}
	}
	if cursor.Off != 6 {
		t.Errorf("byte offset = %d, want 6", cursor.Off)
	}
	if cursor.Pos.Col != 4 {
		t.Errorf("column = %d, want 4 (one per character)", cursor.Pos.Col)
	}
}

func TestAdvanceInvalidUTF8(t *testing.T) {
	cursor := NewCursor(createFile("\xffa"))
	if r, _ := cursor.Advance(); r != '�' {
		t.Errorf("invalid byte must decode as RuneError, got %q", r)
	}
	if r, _ := cursor.Advance(); r != 'a' {
		t.Errorf("next rune = %q, want 'a'", r)
	}
}

// TestPeek2 проверяет Peek2 на середине и конце файла
func TestPeek2(t *testing.T) {
	cursor := NewCursor(createFile("aé"))

	r0, r1, ok := cursor.Peek2()
	if !ok || r0 != 'a' || r1 != 'é' {
		t.Errorf("Peek2 = %q %q %v", r0, r1, ok)
	}
	if cursor.Off != 0 {
		t.Error("Peek2 must not consume")
	}

	_, _ = cursor.Advance()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 with a single character left must fail")
	}
	_, _ = cursor.Advance()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 at end must fail")
	}
}

func TestAdvanceIf(t *testing.T) {
	cursor := NewCursor(createFile("=="))
	if cursor.AdvanceIf('>') {
		t.Error("AdvanceIf must not consume a different character")
	}
	if !cursor.AdvanceIf('=') || !cursor.AdvanceIf('=') {
		t.Fatal("AdvanceIf should consume both '='")
	}
	if cursor.AdvanceIf('=') {
		t.Error("AdvanceIf at end must return false")
	}
}

func TestSpanFrom(t *testing.T) {
	cursor := NewCursor(createFile("ab\ncd"))
	_, _ = cursor.Advance()
	m := cursor.Mark()
	for i := 0; i < 3; i++ {
		_, _ = cursor.Advance()
	}
	sp, loc := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 4 {
		t.Errorf("span = %v", sp)
	}
	want := source.Range{Start: source.LineCol{Line: 1, Col: 2}, End: source.LineCol{Line: 2, Col: 2}}
	if loc != want {
		t.Errorf("range = %v, want %v", loc, want)
	}
}
