package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/sQeeZ-scripting-language/parser/ast"
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/types"
)

// Precedence, loosest first:
//
//	assignment      = += -= *= /= %= **=   right
//	ternary         ?:                     right
//	logical         && ||                  left
//	equality        == !=                  left
//	relational      < > <= >=              left
//	object/array    { } [ ]
//	additive        + -                    left
//	multiplicative  * / %                  left
//	power           **                     right
//	call/member     . [] () |> postfix ++ --
//	primary
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignmentExpr()
}

func (p *Parser) parseAssignmentExpr() (ast.Expression, error) {
	left, err := p.parseTernaryExpr()
	if err != nil {
		return nil, err
	}

	op := p.current()
	if op.Is(types.ASSIGNMENT) {
		p.advance()
		value, err := p.parseAssignmentExpr()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpr{Assignee: left, Value: value}, nil
	}
	if kind, ok := op.Kind.(types.Operator); ok && kind.IsCompoundAssignment() {
		p.advance()
		value, err := p.parseAssignmentExpr()
		if err != nil {
			return nil, err
		}
		return &ast.CompoundAssignmentExpr{Assignee: left, Value: value, Operator: op}, nil
	}

	return left, nil
}

func (p *Parser) parseTernaryExpr() (ast.Expression, error) {
	condition, err := p.parseLogicalExpr()
	if err != nil {
		return nil, err
	}
	if !p.peekIs(types.QUESTION_MARK) {
		return condition, nil
	}
	p.advance()

	trueExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.COLON, "expected ':' in ternary expression"); err != nil {
		return nil, err
	}
	falseExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.TernaryExpr{Condition: condition, TrueExpr: trueExpr, FalseExpr: falseExpr}, nil
}

// parseBinary parses a left-associative run of operands joined by any of ops.
func (p *Parser) parseBinary(operand func() (ast.Expression, error), ops ...types.TokenKind) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.peekIs(ops...) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Right: right, Operator: op}
	}

	return left, nil
}

func (p *Parser) parseLogicalExpr() (ast.Expression, error) {
	return p.parseBinary(p.parseEqualityExpr, types.AND, types.OR)
}

func (p *Parser) parseEqualityExpr() (ast.Expression, error) {
	return p.parseBinary(p.parseRelationalExpr, types.EQUAL, types.NOT_EQUAL)
}

func (p *Parser) parseRelationalExpr() (ast.Expression, error) {
	return p.parseBinary(p.parseObjectExpr, types.LESS, types.GREATER, types.LESS_EQUAL, types.GREATER_EQUAL)
}

func (p *Parser) parseObjectExpr() (ast.Expression, error) {
	switch {
	case p.peekIs(types.OPEN_BRACE):
		return p.parseObjectLiteral()
	case p.peekIs(types.OPEN_BRACKET):
		return p.parseArrayLiteral()
	}
	return p.parseAdditiveExpr()
}

func (p *Parser) parseAdditiveExpr() (ast.Expression, error) {
	return p.parseBinary(p.parseMultiplicativeExpr, types.ADDITION, types.SUBTRACTION)
}

func (p *Parser) parseMultiplicativeExpr() (ast.Expression, error) {
	return p.parseBinary(p.parsePowerExpr, types.MULTIPLICATION, types.DIVISION, types.MODULUS)
}

// parsePowerExpr is right-associative: 2 ** 3 ** 2 is 2 ** (3 ** 2).
func (p *Parser) parsePowerExpr() (ast.Expression, error) {
	base, err := p.parseCallMemberExpr()
	if err != nil {
		return nil, err
	}
	if !p.peekIs(types.POTENTIATION) {
		return base, nil
	}

	op := p.advance()
	exponent, err := p.parsePowerExpr()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: base, Right: exponent, Operator: op}, nil
}

// parseObjectLiteral parses `{ key: value, key, }`. A key without a value is
// the shorthand property.
func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	p.advance()

	obj := &ast.ObjectLiteral{}
	for !p.peekIs(types.CLOSE_BRACE) && !p.isEOF() {
		key, err := p.parsePropertyKey()
		if err != nil {
			return nil, err
		}

		prop := &ast.Property{Key: key}
		if p.peekIs(types.COLON) {
			p.advance()
			if prop.Value, err = p.parseExpression(); err != nil {
				return nil, err
			}
		}
		obj.Properties = append(obj.Properties, prop)

		if !p.peekIs(types.CLOSE_BRACE) {
			if _, err := p.expect(types.COMMA, "expected ',' between object properties"); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(types.CLOSE_BRACE, "expected '}' to close object literal"); err != nil {
		return nil, err
	}
	return obj, nil
}

// parsePropertyKey accepts an identifier or a quoted string.
func (p *Parser) parsePropertyKey() (types.Token, error) {
	if !p.peekIs(types.DOUBLE_QUOTE) {
		return p.expect(types.IDENTIFIER, "expected property key in object literal")
	}

	p.advance()
	key, err := p.expect(types.STRING, "expected property key in object literal")
	if err != nil {
		return key, err
	}
	if _, err := p.expect(types.DOUBLE_QUOTE, "unterminated property key"); err != nil {
		return key, err
	}
	return key, nil
}

// parseArrayLiteral parses `[ element, element, ]`.
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	p.advance()

	arr := &ast.ArrayLiteral{}
	for !p.peekIs(types.CLOSE_BRACKET) && !p.isEOF() {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, elem)

		if !p.peekIs(types.CLOSE_BRACKET) {
			if _, err := p.expect(types.COMMA, "expected ',' between array elements"); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(types.CLOSE_BRACKET, "expected ']' to close array literal"); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseCallMemberExpr parses a primary expression followed by any chain of
// member accesses, calls and pipes. A postfix increment or decrement ends
// the chain.
func (p *Parser) parseCallMemberExpr() (ast.Expression, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		switch {
		case tok.Is(types.DOT, types.OPEN_BRACKET):
			expr, err = p.parseMemberExpr(expr)
		case tok.Is(types.OPEN_PARENTHESIS):
			expr, err = p.parseCallExpr(expr)
		case tok.Is(types.PIPE_OPERATOR):
			expr, err = p.parseShortExpr(expr)
		case tok.Is(types.INCREMENT, types.DECREMENT):
			p.advance()
			return &ast.UnaryExpr{Operator: tok, Operand: expr}, nil
		default:
			return expr, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseMemberExpr parses one `.name` or `[expr]` access on object.
func (p *Parser) parseMemberExpr(object ast.Expression) (ast.Expression, error) {
	if p.advance().Is(types.DOT) {
		name, err := p.expect(types.IDENTIFIER, "expected property name after '.'")
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpr{
			Object:   object,
			Property: &ast.Identifier{Name: name.Value, Token: name},
		}, nil
	}

	property, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.CLOSE_BRACKET, "expected ']' after computed member"); err != nil {
		return nil, err
	}
	return &ast.MemberExpr{Object: object, Property: property, Computed: true}, nil
}

func (p *Parser) parseCallExpr(caller ast.Expression) (ast.Expression, error) {
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Caller: caller, Args: args}, nil
}

// parseArgs parses a parenthesized, comma separated argument list.
func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.expect(types.OPEN_PARENTHESIS, "expected '(' to open argument list"); err != nil {
		return nil, err
	}

	var args []ast.Expression
	for !p.peekIs(types.CLOSE_PARENTHESIS) && !p.isEOF() {
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

	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' to close argument list"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expression, error) {
	tok := p.current()

	switch {
	case tok.Is(types.IDENTIFIER):
		p.advance()
		return &ast.Identifier{Name: tok.Value, Token: tok}, nil
	case tok.Is(types.INTEGER, types.DOUBLE):
		p.advance()
		return numericLiteral(tok, false)
	case tok.Is(types.BOOLEAN):
		p.advance()
		switch tok.Value {
		case "true":
			return &ast.BooleanLiteral{Value: true}, nil
		case "false":
			return &ast.BooleanLiteral{Value: false}, nil
		}
		return nil, errors.UnexpectedToken{Got: tok, Context: "boolean literal must be true or false"}
	case tok.Is(types.NULL_VALUE):
		p.advance()
		return &ast.NullLiteral{}, nil
	case tok.Is(types.HEX_CODE):
		p.advance()
		return &ast.HexCodeLiteral{Value: tok.Value}, nil
	case tok.Is(types.STRING):
		p.advance()
		return &ast.StringLiteral{Value: tok.Value}, nil
	case tok.Is(types.DOUBLE_QUOTE):
		return p.parseStringLiteral()
	case tok.Is(types.SINGLE_QUOTE):
		return p.parseCharLiteral()
	case tok.Is(types.OPEN_PARENTHESIS):
		if p.callbackAhead() {
			return p.parseCallbackFunctionExpr()
		}
		return p.parseParenthesizedExpr()
	case tok.Is(types.SUBTRACTION):
		if next := p.peek(1); next.Is(types.INTEGER, types.DOUBLE) {
			p.advance()
			p.advance()
			return numericLiteral(next, true)
		}
		return p.parsePrefixExpr()
	case tok.Is(types.INCREMENT, types.DECREMENT, types.NOT):
		return p.parsePrefixExpr()
	case tok.In(types.ShortNotationToken):
		p.advance()
		ident, err := shortNotationIdentifier(tok)
		if err != nil {
			return nil, err
		}
		return ident, nil
	case tok.Is(types.SHORT_NOTATION):
		return p.parseShortData()
	}

	return nil, errors.UnexpectedToken{Got: tok, Context: "unexpected token in expression"}
}

func (p *Parser) parsePrefixExpr() (ast.Expression, error) {
	op := p.advance()
	operand, err := p.parseCallMemberExpr()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Operator: op, Operand: operand, Prefix: true}, nil
}

func (p *Parser) parseParenthesizedExpr() (ast.Expression, error) {
	p.advance()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' to close parenthesized expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

// numericLiteral converts an INTEGER or DOUBLE token, folding a leading
// minus sign into the value.
func numericLiteral(tok types.Token, negative bool) (ast.Expression, error) {
	text := tok.Value
	if negative {
		text = "-" + text
	}

	if tok.Is(types.INTEGER) {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.UnexpectedToken{Got: tok, Context: "invalid integer literal"}
		}
		return &ast.IntegerLiteral{Value: v}, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errors.UnexpectedToken{Got: tok, Context: "invalid double literal"}
	}
	return &ast.DoubleLiteral{Value: v}, nil
}

// parseStringLiteral parses `" text "`. Adjacent quotes are the empty string.
func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	p.advance()

	var value string
	if p.peekIs(types.STRING) {
		value = p.advance().Value
	}
	if _, err := p.expect(types.DOUBLE_QUOTE, "unterminated string literal"); err != nil {
		return nil, err
	}
	return &ast.StringLiteral{Value: value}, nil
}

// parseCharLiteral parses `' c '`; the quoted text must be a single rune.
func (p *Parser) parseCharLiteral() (ast.Expression, error) {
	p.advance()

	tok, err := p.expect(types.CHAR, "expected character after single quote")
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(tok.Value) != 1 {
		return nil, errors.UnexpectedToken{Got: tok, Context: "char literal must hold exactly one character"}
	}
	if _, err := p.expect(types.SINGLE_QUOTE, "unterminated char literal"); err != nil {
		return nil, err
	}

	r, _ := utf8.DecodeRuneInString(tok.Value)
	return &ast.CharLiteral{Value: r}, nil
}

// callbackAhead reports whether the parenthesized group at the front is the
// parameter list of a callback, i.e. its matching ')' is followed by '=>'.
func (p *Parser) callbackAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.peek(i)
		switch {
		case tok.Is(types.OPEN_PARENTHESIS):
			depth++
		case tok.Is(types.CLOSE_PARENTHESIS):
			depth--
			if depth == 0 {
				return p.peek(i + 1).Is(types.CALLBACK_FUNCTION)
			}
		case tok.Is(types.EOF):
			return false
		}
	}
}

// parseCallbackFunctionExpr parses `(params) => { body }` and
// `(params) => expr`; the latter becomes a body holding one return.
func (p *Parser) parseCallbackFunctionExpr() (ast.Expression, error) {
	p.advance()

	var params []types.Token
	for !p.peekIs(types.CLOSE_PARENTHESIS) && !p.isEOF() {
		param, err := p.expect(types.IDENTIFIER, "callback parameters must be plain identifiers")
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if !p.peekIs(types.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' after callback parameters"); err != nil {
		return nil, err
	}
	if _, err := p.expect(types.CALLBACK_FUNCTION, "expected '=>' after callback parameters"); err != nil {
		return nil, err
	}

	if p.peekIs(types.OPEN_BRACE) {
		body, err := p.parseBlock("callback body")
		if err != nil {
			return nil, err
		}
		return &ast.CallbackFunctionExpr{Parameters: params, Body: body}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.CallbackFunctionExpr{
		Parameters: params,
		Body:       []ast.Statement{&ast.ReturnStmt{Value: value}},
	}, nil
}
