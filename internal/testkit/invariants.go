package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jslex/internal/source"
	"jslex/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a token stream
// scanned from sf:
// 1) every token has a known kind and a consistent payload
// 2) every span is non-empty, inside the file and matches Token.Text
// 3) spans are ordered and do not overlap
// 4) Loc agrees with the file's own offset -> line/column resolution
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d: empty span %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		if !tok.Loc.Valid() {
			return fmt.Errorf("token %d: reversed location %v", i, tok.Loc)
		}
		if want := sf.Position(sp.Start); tok.Loc.Start != want {
			return fmt.Errorf("token %d: start %v, resolved %+v", i, tok.Loc, want)
		}
		if want := sf.Position(sp.End); tok.Loc.End != want {
			return fmt.Errorf("token %d: end %v, resolved %+v", i, tok.Loc, want)
		}
		if err := checkPayload(tok); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return nil
}

func checkPayload(tok token.Token) error {
	switch tok.Kind {
	case token.KindKeyword:
		if kw, ok := token.LookupKeyword(tok.Text); !ok || kw != tok.Keyword {
			return fmt.Errorf("keyword tag %v does not match text %q", tok.Keyword, tok.Text)
		}
	case token.KindIdent:
		if _, ok := token.LookupKeyword(tok.Text); ok {
			return fmt.Errorf("identifier %q is a keyword", tok.Text)
		}
	case token.KindSymbol:
		if tok.Symbol == token.SymbolNone || tok.Symbol.Spelling() != tok.Text {
			return fmt.Errorf("symbol %v does not match text %q", tok.Symbol, tok.Text)
		}
	case token.KindNumber, token.KindString:
	default:
		return fmt.Errorf("invalid kind %v", tok.Kind)
	}
	return nil
}
