package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"jslex/internal/source"
	"jslex/internal/token"
)

// TokenOutput: JSON-представление одного токена.
type TokenOutput struct {
	Kind    string         `json:"kind"`
	Keyword string         `json:"keyword,omitempty"`
	Symbol  string         `json:"symbol,omitempty"`
	Text    string         `json:"text"`
	Value   *float64       `json:"value,omitempty"`
	Literal *string        `json:"literal,omitempty"`
	Span    source.Span    `json:"span"`
	Start   source.LineCol `json:"start"`
	End     source.LineCol `json:"end"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// TriviaOutput: пропущенный фрагмент перед токеном.
type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// MakeTokenOutput переводит токен в JSON-структуру. Payload заполняется только
// для соответствующего Kind: value для Number, literal для String.
func MakeTokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind:  tok.Kind.String(),
		Text:  tok.Text,
		Span:  tok.Span,
		Start: tok.Loc.Start,
		End:   tok.Loc.End,
	}
	switch tok.Kind {
	case token.KindKeyword:
		out.Keyword = tok.Keyword.String()
	case token.KindSymbol:
		out.Symbol = tok.Symbol.String()
	case token.KindNumber:
		v := tok.Value
		out.Value = &v
	case token.KindString:
		lit := tok.Literal
		out.Literal = &lit
	}
	for _, tr := range tok.Leading {
		out.Leading = append(out.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// "  N: Kind detail at L:C-L:C"
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		line := fmt.Sprintf("%3d: %-10s %s at %s", i+1, tok.Kind.String(), detail(tok), tok.Loc)
		if len(leading) > 0 {
			line += fmt.Sprintf(" (leading: %s)", strings.Join(leading, ", "))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func detail(tok token.Token) string {
	switch tok.Kind {
	case token.KindNumber:
		return strconv.FormatFloat(tok.Value, 'g', -1, 64)
	case token.KindString:
		return strconv.Quote(tok.Literal)
	case token.KindSymbol:
		return fmt.Sprintf("%s %q", tok.Symbol, tok.Text)
	default:
		return tok.Detail()
	}
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, MakeTokenOutput(tok))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
