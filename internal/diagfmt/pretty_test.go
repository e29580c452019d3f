package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"jslex/internal/diag"
	"jslex/internal/source"
)

func newBag(d ...diag.Diagnostic) *diag.Bag {
	bag := diag.NewBag(10)
	for _, x := range d {
		bag.Add(x)
	}
	return bag
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", content)

	bag := newBag(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Primary:  source.Span{File: fileID, Start: 8, End: 28},
		Message:  "unterminated string literal",
	})

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.js:1:9:"},
		{"Relative path", PathModeRelative, "src/test.js:1:9:"},
		{"Basename only", PathModeBasename, "test.js:1:9:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.HasPrefix(output, tt.want) {
				t.Errorf("Expected output to start with %q, got:\n%s", tt.want, output)
			}
			for _, part := range []string{"ERROR", "LEX1002", "unterminated string literal"} {
				if !strings.Contains(output, part) {
					t.Errorf("Expected %q in output:\n%s", part, output)
				}
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("let a = 1;\nx = @;\ny;\n"))
	bag := newBag(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Primary:  source.Span{File: id, Start: 15, End: 16},
		Message:  "unexpected character '@'",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})

	want := strings.Join([]string{
		"a.js:2:5: ERROR LEX1001: unexpected character '@'",
		" 1 | let a = 1;",
		" 2 | x = @;",
		"   |     ^",
		" 3 | y;",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyWideUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("w.js", []byte("s = \"界界"))
	bag := newBag(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Primary:  source.Span{File: id, Start: 4, End: 11},
		Message:  "unterminated string literal",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// кавычка: 1 ячейка, каждый иероглиф: 2
	if lines[2] != "   |     ^~~~~" {
		t.Errorf("underline %q", lines[2])
	}
}

func TestPrettyMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.js", []byte("ab"))
	d := diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexInfo,
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Message:  "first",
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 1, End: 2}, Msg: "see here"}},
	}
	bag := newBag(d, d, d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Max: 1, ShowNotes: true})
	out := buf.String()
	if strings.Count(out, "WARNING") != 1 {
		t.Errorf("expected one diagnostic printed:\n%s", out)
	}
	if !strings.Contains(out, "note: n.js:1:2: see here") {
		t.Errorf("note missing:\n%s", out)
	}
	if !strings.Contains(out, "... and 2 more diagnostic(s)") {
		t.Errorf("truncation marker missing:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.js", []byte("@"))
	bag := newBag(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexUnknownChar, Primary: source.Span{File: id, End: 1}})

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output must contain escape sequences")
	}
}

func TestBuildDiagnosticsOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("j.js", []byte("a\n b"))
	d := diag.Diagnostic{Severity: diag.SevError, Code: diag.LexBadNumber, Primary: source.Span{File: id, Start: 3, End: 4}, Message: "m"}
	bag := newBag(d, d)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true, Max: 1})
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	got := out.Diagnostics[0]
	if got.Code != "LEX1004" || got.Severity != "ERROR" {
		t.Errorf("unexpected %+v", got)
	}
	if got.Location.StartLine != 2 || got.Location.StartCol != 2 || got.Location.EndCol != 3 {
		t.Errorf("location %+v", got.Location)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "start_line") {
		t.Errorf("positions must be omitted by default:\n%s", buf.String())
	}
}
