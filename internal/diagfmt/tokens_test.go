package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jslex/internal/lexer"
	"jslex/internal/source"
)

func lexAll(t *testing.T, src string, trivia bool) *bytes.Buffer {
	t.Helper()
	fs := source.NewFileSet()
	tokens, err := lexer.All(fs.Get(fs.AddVirtual("t.js", []byte(src))), lexer.Options{Trivia: trivia})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestFormatTokensPretty(t *testing.T) {
	out := lexAll(t, "const hello = 1.12;", false).String()
	want := []string{
		"  1: Keyword    const at 1:1-1:6",
		"  2: Identifier hello at 1:7-1:12",
		`  3: Symbol     Assign "=" at 1:13-1:14`,
		"  4: Number     1.12 at 1:15-1:19",
		`  5: Symbol     SemiColon ";" at 1:19-1:20`,
	}
	if got := strings.TrimRight(out, "\n"); got != strings.Join(want, "\n") {
		t.Errorf("got:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
}

func TestFormatTokensPrettyLeading(t *testing.T) {
	out := lexAll(t, "// c\n'x'", true).String()
	if !strings.Contains(out, `String     "x" at 2:1-2:4 (leading: LineComment, Newline)`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	tokens, err := lexer.All(fs.Get(fs.AddVirtual("t.js", []byte("if x >= 2 'a\\n'"))), lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(decoded))
	}
	if decoded[0]["kind"] != "Keyword" || decoded[0]["keyword"] != "if" {
		t.Errorf("keyword token %v", decoded[0])
	}
	if decoded[2]["symbol"] != "Ge" || decoded[2]["text"] != ">=" {
		t.Errorf("symbol token %v", decoded[2])
	}
	if decoded[3]["value"] != 2.0 {
		t.Errorf("number token %v", decoded[3])
	}
	if decoded[4]["literal"] != "a\n" {
		t.Errorf("string token %v", decoded[4])
	}
	if _, ok := decoded[1]["value"]; ok {
		t.Error("identifier must not carry a value")
	}
}

func TestFormatTokensJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}
