package parser

import (
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/types"
)

// current returns the front token of the stream.
func (p *Parser) current() types.Token {
	return p.peek(0)
}

// peek returns the token steps positions after the front without consuming
// anything. Past the end it returns the last token (the EOF marker), so
// speculative scans never fail.
func (p *Parser) peek(steps int) types.Token {
	i := p.pos + steps
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

// lookAhead is peek for callers that need the exact token: running past the
// end of the stream is an error.
func (p *Parser) lookAhead(steps int) (types.Token, error) {
	i := p.pos + steps
	if i >= len(p.tokens) {
		return types.Token{}, errors.LookAheadPastEnd{
			Steps:     steps,
			Remaining: len(p.tokens) - p.pos,
		}
	}
	return p.tokens[i], nil
}

// advance consumes the front token. The final EOF marker is never consumed.
func (p *Parser) advance() types.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) peekIs(kinds ...types.TokenKind) bool {
	return p.current().Is(kinds...)
}

// expect consumes one token and fails unless its plain text matches kind.
func (p *Parser) expect(kind types.TokenKind, context string) (types.Token, error) {
	tok := p.advance()
	if tok.PlainText() != types.PlainText(kind) {
		return tok, errors.ExpectedKindGotKind{
			Expected: types.PlainText(kind),
			Got:      tok,
			Context:  context,
		}
	}
	return tok, nil
}

// expectOneOf is expect for grammar positions that accept several kinds.
func (p *Parser) expectOneOf(context string, kinds ...types.TokenKind) (types.Token, error) {
	tok := p.advance()
	if tok.Is(kinds...) {
		return tok, nil
	}
	expected := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		expected = append(expected, types.PlainText(kind))
	}
	return tok, errors.ExpectedOneOfKindGotKind{
		Expected: expected,
		Got:      tok,
		Context:  context,
	}
}

func (p *Parser) isEOF() bool {
	return p.peekIs(types.EOF)
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekIs(types.SEMICOLON) {
		p.advance()
	}
}

// skipComment consumes an inline comment marker and the comment text after
// it, if present.
func (p *Parser) skipComment() {
	if !p.peekIs(types.INLINE_COMMENT) {
		return
	}
	p.advance()
	if p.peekIs(types.COMMENT) {
		p.advance()
	}
}
