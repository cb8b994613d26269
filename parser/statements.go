package parser

import (
	"github.com/sQeeZ-scripting-language/parser/ast"
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/types"
)

// parseStatement returns a nil statement for constructs that produce no
// node, such as inline comments.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.current()

	switch {
	case tok.Is(types.VAR, types.CONST):
		decl, err := p.parseVarDeclaration(false)
		if err != nil {
			return nil, err
		}
		return decl, nil
	case tok.Is(types.FUNCTION):
		return p.parseFunctionDeclaration()
	case tok.Is(types.IF):
		return p.parseConditionalStmt()
	case tok.Is(types.WHILE):
		return p.parseWhileStmt()
	case tok.Is(types.DO):
		return p.parseDoWhileStmt()
	case tok.Is(types.FOR):
		return p.parseForStmt()
	case tok.Is(types.RETURN):
		return p.parseReturnStmt()
	case tok.In(types.LogToken):
		return p.parseLogStmt()
	case tok.Is(types.INLINE_COMMENT):
		p.skipComment()
		return nil, nil
	}

	return p.parseExpression()
}

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock(what string) ([]ast.Statement, error) {
	if _, err := p.expect(types.OPEN_BRACE, "expected '{' to open "+what); err != nil {
		return nil, err
	}

	var body []ast.Statement
	for !p.peekIs(types.CLOSE_BRACE) && !p.isEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		}
		p.skipOptionalSemicolon()
	}

	if _, err := p.expect(types.CLOSE_BRACE, "expected '}' to close "+what); err != nil {
		return nil, err
	}
	return body, nil
}

// parseVarDeclaration parses `var|const name [= value] (, name [= value])*`.
// Inside a for header a constant may stay uninitialized; the caller checks
// it once the loop shape is known.
func (p *Parser) parseVarDeclaration(loopHeader bool) (*ast.VarDeclaration, error) {
	qualifier := p.advance()
	decl := &ast.VarDeclaration{Qualifier: qualifier}

	for {
		name, err := p.expect(types.IDENTIFIER, "expected identifier in variable declaration")
		if err != nil {
			return nil, err
		}

		binding := ast.VarBinding{Name: name}
		if p.peekIs(types.ASSIGNMENT) {
			p.advance()
			if binding.Value, err = p.parseExpression(); err != nil {
				return nil, err
			}
		} else if qualifier.Is(types.CONST) && !loopHeader {
			return nil, uninitializedConstant(name)
		}
		decl.Bindings = append(decl.Bindings, binding)

		if !p.peekIs(types.COMMA) {
			return decl, nil
		}
		p.advance()
	}
}

func uninitializedConstant(name types.Token) error {
	return errors.UnexpectedToken{
		Got:     name,
		Context: "constant declaration must have an initializer",
	}
}

// parseFunctionDeclaration parses `fn name(params) { body }`.
func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	p.advance()

	name, err := p.expect(types.IDENTIFIER, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.OPEN_PARENTHESIS, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []types.Token
	for !p.peekIs(types.CLOSE_PARENTHESIS) && !p.isEOF() {
		start := p.current()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ident, ok := arg.(*ast.Identifier)
		if !ok || !ident.Token.Is(types.IDENTIFIER) {
			return nil, errors.UnexpectedToken{
				Got:     start,
				Context: "function parameters must be plain identifiers",
			}
		}
		params = append(params, ident.Token)

		if !p.peekIs(types.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' after function parameters"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock("function body")
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{
		Name:       name,
		Parameters: params,
		Body:       body,
	}, nil
}

// parseConditionalStmt parses `if (c) {..} [elif (c) {..}]* [else {..}]`.
func (p *Parser) parseConditionalStmt() (ast.Statement, error) {
	clause, err := p.parseConditionalClause()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ConditionalStmt{Clauses: []ast.ConditionalClause{clause}}

	for p.peekIs(types.ELIF) {
		clause, err := p.parseConditionalClause()
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, clause)
	}

	if p.peekIs(types.ELSE) {
		keyword := p.advance()
		body, err := p.parseBlock("else block")
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, ast.ConditionalClause{Keyword: keyword, Body: body})
	}

	return stmt, nil
}

func (p *Parser) parseConditionalClause() (ast.ConditionalClause, error) {
	keyword := p.advance()

	condition, err := p.parseCondition(keyword.Value)
	if err != nil {
		return ast.ConditionalClause{}, err
	}
	body, err := p.parseBlock(keyword.Value + " block")
	if err != nil {
		return ast.ConditionalClause{}, err
	}

	return ast.ConditionalClause{Keyword: keyword, Condition: condition, Body: body}, nil
}

// parseCondition parses the parenthesized condition after if, elif and while.
func (p *Parser) parseCondition(keyword string) (ast.Expression, error) {
	if _, err := p.expect(types.OPEN_PARENTHESIS, "expected '(' after "+keyword); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' after "+keyword+" condition"); err != nil {
		return nil, err
	}
	return condition, nil
}

func (p *Parser) parseWhileStmt() (ast.Statement, error) {
	p.advance()

	condition, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("while body")
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// parseDoWhileStmt parses `do { body } while (c);`. The semicolon is
// mandatory.
func (p *Parser) parseDoWhileStmt() (ast.Statement, error) {
	p.advance()

	body, err := p.parseBlock("do body")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.WHILE, "expected 'while' after do body"); err != nil {
		return nil, err
	}
	condition, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.SEMICOLON, "do-while loop must end with ';'"); err != nil {
		return nil, err
	}

	return &ast.DoWhileStmt{Condition: condition, Body: body}, nil
}

// parseForStmt parses the three loop shapes that share one header prefix:
//
//	for (iterator in iterable) {..}
//	for (iterator of iterable) {..}
//	for (iterator; condition; increment) {..}
func (p *Parser) parseForStmt() (ast.Statement, error) {
	p.advance()

	if _, err := p.expect(types.OPEN_PARENTHESIS, "expected '(' after for"); err != nil {
		return nil, err
	}

	var (
		iterator ast.Statement
		decl     *ast.VarDeclaration
		err      error
	)
	switch {
	case p.peekIs(types.VAR, types.CONST):
		if decl, err = p.parseVarDeclaration(true); err != nil {
			return nil, err
		}
		iterator = decl
	case p.peekIs(types.SEMICOLON):
	default:
		if iterator, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	sep, err := p.expectOneOf("unexpected token after for loop iterator", types.IN, types.OF, types.SEMICOLON)
	if err != nil {
		return nil, err
	}

	if sep.Is(types.SEMICOLON) {
		if decl != nil && decl.Qualifier.Is(types.CONST) {
			for _, binding := range decl.Bindings {
				if binding.Value == nil {
					return nil, uninitializedConstant(binding.Name)
				}
			}
		}
		return p.parseForClauses(iterator)
	}

	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' after for-"+sep.Value+" header"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("for body")
	if err != nil {
		return nil, err
	}

	if sep.Is(types.IN) {
		return &ast.ForInStmt{Iterator: iterator, Iterable: iterable, Body: body}, nil
	}
	return &ast.ForOfStmt{Iterator: iterator, Iterable: iterable, Body: body}, nil
}

// parseForClauses parses `condition; increment) {..}` of a classic for loop;
// both clauses may be empty.
func (p *Parser) parseForClauses(iterator ast.Statement) (ast.Statement, error) {
	stmt := &ast.ForStmt{Iterator: iterator}

	var err error
	if !p.peekIs(types.SEMICOLON) {
		if stmt.Condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(types.SEMICOLON, "expected ';' after for loop condition"); err != nil {
		return nil, err
	}
	if !p.peekIs(types.CLOSE_PARENTHESIS) {
		if stmt.Increment, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' after for loop header"); err != nil {
		return nil, err
	}

	if stmt.Body, err = p.parseBlock("for body"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseReturnStmt parses `return [value]`. The value is absent when the
// statement ends right away.
func (p *Parser) parseReturnStmt() (ast.Statement, error) {
	p.advance()

	if p.peekIs(types.SEMICOLON, types.CLOSE_BRACE, types.EOF) {
		return &ast.ReturnStmt{}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value}, nil
}

// parseLogStmt parses `log(args)`, `warn(args)`, `error(args)` and
// `logc(args, #color)`. A colored log takes its color from the last
// argument, which must be a hex code literal.
func (p *Parser) parseLogStmt() (ast.Statement, error) {
	logType := p.advance()

	if _, err := p.expect(types.OPEN_PARENTHESIS, "expected '(' after "+logType.Value); err != nil {
		return nil, err
	}

	var (
		args   []ast.Expression
		starts []types.Token
	)
	for !p.peekIs(types.CLOSE_PARENTHESIS) && !p.isEOF() {
		starts = append(starts, p.current())
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.peekIs(types.COMMA) {
			break
		}
		p.advance()
	}

	closing, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' after "+logType.Value+" arguments")
	if err != nil {
		return nil, err
	}

	stmt := &ast.LogStmt{LogType: logType, Messages: args}
	if !logType.Is(types.LOGC) {
		return stmt, nil
	}

	if len(args) == 0 {
		return nil, errors.UnexpectedToken{Got: closing, Context: "colored log requires a hex color as its last argument"}
	}
	last := len(args) - 1
	color, ok := args[last].(*ast.HexCodeLiteral)
	if !ok {
		return nil, errors.UnexpectedToken{Got: starts[last], Context: "colored log requires a hex color as its last argument"}
	}
	stmt.Color = color
	stmt.Messages = args[:last]
	return stmt, nil
}
