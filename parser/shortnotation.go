package parser

import (
	"github.com/sQeeZ-scripting-language/parser/ast"
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/types"
)

// shortNotationNames maps every short notation operation to the name of the
// runtime method it calls.
var shortNotationNames = [...]string{
	types.LENGTH:          "length",
	types.CONCAT:          "concat",
	types.INCLUDES:        "includes",
	types.INDEX_OF:        "indexOf",
	types.LAST_INDEX_OF:   "lastIndexOf",
	types.JOIN:            "join",
	types.SLICE:           "slice",
	types.SPLICE:          "splice",
	types.PUSH:            "push",
	types.POP:             "pop",
	types.SHIFT:           "shift",
	types.UNSHIFT:         "unshift",
	types.REVERSE:         "reverse",
	types.SORT:            "sort",
	types.MAP:             "map",
	types.FILTER:          "filter",
	types.REDUCE:          "reduce",
	types.FIND:            "find",
	types.FIND_INDEX:      "findIndex",
	types.FIND_LAST:       "findLast",
	types.FIND_LAST_INDEX: "findLastIndex",
	types.FILL:            "fill",
	types.FLAT:            "flat",
	types.FLAT_MAP:        "flatMap",
	types.EVERY:           "every",
	types.SOME:            "some",
	types.FOR_EACH:        "forEach",
	types.KEYS:            "keys",
	types.VALUES:          "values",
	types.ENTRIES:         "entries",
	types.CHAR_AT:         "charAt",
	types.TO_UPPER:        "toUpperCase",
	types.TO_LOWER:        "toLowerCase",
	types.TRIM:            "trim",
	types.TRIM_START:      "trimStart",
	types.TRIM_END:        "trimEnd",
	types.SPLIT:           "split",
	types.REPLACE:         "replace",
	types.REPLACE_ALL:     "replaceAll",
	types.STARTS_WITH:     "startsWith",
	types.ENDS_WITH:       "endsWith",
	types.PAD_START:       "padStart",
	types.PAD_END:         "padEnd",
	types.REPEAT:          "repeat",
	types.SUBSTRING:       "substring",
}

// MethodName returns the runtime method behind a short notation operation.
func MethodName(kind types.ShortNotation) (string, bool) {
	if int(kind) < 0 || int(kind) >= len(shortNotationNames) {
		return "", false
	}
	return shortNotationNames[kind], true
}

func shortNotationIdentifier(tok types.Token) (*ast.Identifier, error) {
	kind, _ := tok.Kind.(types.ShortNotation)
	name, ok := MethodName(kind)
	if !ok || !tok.In(types.ShortNotationToken) {
		return nil, errors.UnexpectedToken{Got: tok, Context: "unknown short notation operation"}
	}
	return &ast.Identifier{Name: name, Token: tok}, nil
}

// parseShortExpr parses `|>OPERATION` or `|>OPERATION(args)` applied to
// caller.
func (p *Parser) parseShortExpr(caller ast.Expression) (ast.Expression, error) {
	p.advance()

	operation := p.advance()
	if !operation.In(types.ShortNotationToken) {
		return nil, errors.UnexpectedToken{
			Got:     operation,
			Context: "pipe operator must be followed by a short notation operation",
		}
	}
	method, err := shortNotationIdentifier(operation)
	if err != nil {
		return nil, err
	}

	call := &ast.CallExpr{Caller: caller, Method: method}
	if p.peekIs(types.OPEN_PARENTHESIS) {
		if call.Args, err = p.parseShortArgs(operation); err != nil {
			return nil, err
		}
	}
	return call, nil
}

func (p *Parser) parseShortArgs(operation types.Token) ([]ast.Expression, error) {
	p.advance()

	var args []ast.Expression
	for !p.peekIs(types.CLOSE_PARENTHESIS) && !p.isEOF() {
		arg, err := p.parseShortArg(operation)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if !p.peekIs(types.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.expect(types.CLOSE_PARENTHESIS, "expected ')' to close short notation arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

var shortOperators = []types.TokenKind{
	types.ADDITION, types.SUBTRACTION, types.MULTIPLICATION,
	types.DIVISION, types.MODULUS, types.POTENTIATION,
	types.EQUAL, types.NOT_EQUAL,
	types.LESS, types.GREATER, types.LESS_EQUAL, types.GREATER_EQUAL,
	types.AND, types.OR,
}

// parseShortArg parses one argument of a short notation call:
//
//	++ / --        shorthand for +1 / -1
//	op expr        operation applied with expr, e.g. *2 or >3
//	expr : expr    pair, e.g. a replacement
//	expr           plain value
func (p *Parser) parseShortArg(operation types.Token) (ast.Expression, error) {
	tok := p.current()

	switch {
	case tok.Is(types.INCREMENT, types.DECREMENT):
		p.advance()
		kind := types.ADDITION
		if tok.Is(types.DECREMENT) {
			kind = types.SUBTRACTION
		}
		return &ast.ShortOperationLiteral{
			Type:      operation,
			Operation: types.Token{Kind: kind, Value: kind.Text(), Location: tok.Location},
			Value:     &ast.IntegerLiteral{Value: 1},
		}, nil

	case tok.Is(shortOperators...):
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ShortOperationLiteral{Type: operation, Operation: tok, Value: value}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.peekIs(types.COLON) {
		return &ast.ShortSingleExpressionLiteral{Type: operation, Value: value}, nil
	}

	p.advance()
	second, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ShortDoubleExpressionLiteral{Type: operation, Value1: value, Value2: second}, nil
}

// parseShortData parses the `@` data shorthand: `@key: value, ...;` is an
// object, `@value, ...;` an array. The terminating semicolon is required.
func (p *Parser) parseShortData() (ast.Expression, error) {
	second, err := p.lookAhead(2)
	if err != nil {
		return nil, err
	}
	p.advance()

	if second.Is(types.COLON) {
		return p.parseShortObject()
	}
	return p.parseShortArray()
}

func (p *Parser) parseShortObject() (ast.Expression, error) {
	obj := &ast.ObjectLiteral{}
	for {
		key, err := p.expect(types.IDENTIFIER, "expected key in short notation object")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(types.COLON, "expected ':' after short notation object key"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, &ast.Property{Key: key, Value: value})

		if !p.peekIs(types.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.expect(types.SEMICOLON, "short notation object must end with ';'"); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *Parser) parseShortArray() (ast.Expression, error) {
	arr := &ast.ArrayLiteral{}
	for !p.peekIs(types.SEMICOLON) && !p.isEOF() {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, elem)

		if !p.peekIs(types.COMMA) {
			break
		}
		p.advance()
	}

	if _, err := p.expect(types.SEMICOLON, "short notation array must end with ';'"); err != nil {
		return nil, err
	}
	return arr, nil
}
