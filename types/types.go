package types

import (
	"fmt"
	"unicode/utf8"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// SpanOf returns the span covered by text starting at p on a single line.
func SpanOf(p Position, text string) Span {
	to := p
	if n := utf8.RuneCountInString(text); n > 1 {
		to.Column += n - 1
	}
	return Span{p, to}
}

// Token is one lexical unit handed over by the lexer. Tokens are never
// modified once produced.
type Token struct {
	Kind     TokenKind
	Value    string
	Location Span
}

// NewToken builds a token, falling back to the kind's fixed spelling when
// value is empty.
func NewToken(kind TokenKind, value string, at Position) Token {
	if value == "" {
		value = kind.Text()
	}
	return Token{
		Kind:     kind,
		Value:    value,
		Location: SpanOf(at, value),
	}
}

// PlainText is the canonical "<Category>::<SUBKIND>" name of the token's
// kind, used for exact grammar matching.
func (t Token) PlainText() string {
	if t.Kind == nil {
		return "<nil>"
	}
	return PlainText(t.Kind)
}

// Is reports whether the token is of any of the given kinds.
func (t Token) Is(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// In reports whether the token belongs to category c.
func (t Token) In(c Category) bool {
	return t.Kind != nil && t.Kind.Category() == c
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.PlainText(), t.Value, t.Location)
}
