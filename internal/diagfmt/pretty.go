package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jslex/internal/diag"
	"jslex/internal/source"
)

type palette struct {
	err, warn, info, code, path, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan),
		code:  mk(color.Bold),
		path:  mk(color.FgWhite, color.Bold),
		caret: mk(color.FgGreen, color.Bold),
		note:  mk(color.FgBlue),
	}
}

func (p palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err.Sprint(s.String())
	case diag.SevWarning:
		return p.warn.Sprint(s.String())
	default:
		return p.info.Sprint(s.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	for i := range n {
		d := items[i]
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			p.path.Sprint(displayPath(f, opts.PathMode, fs.BaseDir())),
			start.Line, start.Col,
			p.severity(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
		writeSnippet(w, f, start, end, opts.Context, p)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf := fs.Get(note.Span.File)
				ns, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
					displayPath(nf, opts.PathMode, fs.BaseDir()), ns.Line, ns.Col, note.Msg)
			}
		}
	}
	if hidden := len(items) - n; hidden > 0 {
		fmt.Fprintf(w, "... and %d more diagnostic(s)\n", hidden)
	}
}

// writeSnippet печатает строку ошибки с номером, ctx строк вокруг неё и
// подчёркивание. Ширина считается в ячейках терминала (CJK, emoji).
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, ctx int8, p palette) {
	lines := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- bounded by file size
	from, to := start.Line, start.Line
	if ctx > 0 {
		c := uint32(ctx)
		from = max(1, start.Line-min(c, start.Line-1))
		to = min(lines, start.Line+c)
	}
	gutter := len(fmt.Sprint(to))

	for ln := from; ln <= to; ln++ {
		text := strings.TrimRight(f.GetLine(ln), "\r\n")
		fmt.Fprintf(w, " %*d | %s\n", gutter, ln, text)
		if ln != start.Line {
			continue
		}
		endCol := end.Col
		if end.Line != start.Line {
			endCol = uint32(len([]rune(text))) + 1 // #nosec G115 -- line length
		}
		fmt.Fprintf(w, " %*s | %s\n", gutter, "", underline(text, start.Col, endCol, p))
	}
}

// underline строит ^~~~ под колонками [startCol, endCol). Табы копируются,
// чтобы подчёркивание совпало с тем, как терминал раскроет строку.
func underline(text string, startCol, endCol uint32, p palette) string {
	var pad strings.Builder
	width := 0
	col := uint32(1)
	for _, r := range text {
		switch {
		case col < startCol:
			if r == '\t' {
				pad.WriteByte('\t')
			} else {
				pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
			}
		case col < endCol:
			width += max(1, runewidth.RuneWidth(r))
		}
		col++
	}
	width = max(1, width)
	return pad.String() + p.caret.Sprint("^"+strings.Repeat("~", width-1))
}
