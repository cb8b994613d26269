// Package parser turns the token stream of the sQeeZ lexer into an AST.
//
// The grammar is a plain recursive descent: statements dispatch on the
// current token, expressions climb a fixed precedence chain from assignment
// down to primary expressions. The first grammar violation aborts the parse;
// there is no recovery and no partial tree.
package parser

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/sQeeZ-scripting-language/parser/ast"
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/types"
)

var plog = capnslog.NewPackageLogger("github.com/sQeeZ-scripting-language/parser", "parser")

// Parser owns a cursor over one token stream. It is not safe for
// concurrent use.
type Parser struct {
	tokens []types.Token
	pos    int
}

func NewParser(tokens []types.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is shorthand for NewParser(tokens).Parse(devMode).
func Parse(tokens []types.Token, devMode bool) (*ast.Program, error) {
	return NewParser(tokens).Parse(devMode)
}

// Parse builds the program tree. The stream must start with an INIT marker
// and end with an EOF marker. On failure the returned error wraps exactly
// one errors.Failure; use tracerr.Unwrap or errors.KindOf to inspect it.
func (p *Parser) Parse(devMode bool) (*ast.Program, error) {
	plog.Debugf("parsing %d tokens", len(p.tokens))

	program, err := p.parseProgram()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	if devMode {
		plog.Infof("AST:\n%s", program)
	}
	return program, nil
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	p.pos = 0

	if len(p.tokens) == 0 {
		return nil, errors.MissingSentinel{Expected: types.PlainText(types.EOF)}
	}
	if last := p.tokens[len(p.tokens)-1]; !last.Is(types.EOF) {
		return nil, errors.MissingSentinel{Expected: types.PlainText(types.EOF), Got: last}
	}
	if _, err := p.expect(types.INIT, "token stream must start with the INIT marker"); err != nil {
		return nil, err
	}

	program := &ast.Program{}
	for !p.isEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			program.Body = append(program.Body, stmt)
		}
		p.skipOptionalSemicolon()
	}

	plog.Debugf("parsed %d top-level statements", len(program.Body))
	return program, nil
}
