package token

import "venti/internal/source"

// TriviaKind classifies non-token source text attached to a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	}
	return "Unknown"
}

// Trivia is a run of skipped whitespace. It is carried as Leading on the
// following token and never surfaces as a token of its own.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
