package token

import "jslex/internal/source"

// TriviaKind classifies skipped source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "TriviaKind(?)"
}

// Trivia is a skipped run of whitespace or a comment.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
