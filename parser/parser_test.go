package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"

	"github.com/sQeeZ-scripting-language/parser/ast"
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/types"
)

func TestParseEmptyProgram(t *testing.T) {
	program := parse(t, "")
	assert.Empty(t, program.Body)
	assert.Equal(t, "Program:\n", program.String())
}

func TestParseSentinels(t *testing.T) {
	full := words("x")

	tests := []struct {
		name   string
		tokens []types.Token
	}{
		{"no tokens", nil},
		{"missing EOF", full[:len(full)-1]},
		{"missing INIT", full[1:]},
		{"only EOF", full[len(full)-1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := Parse(tt.tokens, false)
			require.Error(t, err)
			assert.Nil(t, program)

			kind, ok := errors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, errors.InvalidInput, kind)
		})
	}
}

func TestParseMissingEOFIsSentinelFailure(t *testing.T) {
	full := words("x ;")
	_, err := Parse(full[:len(full)-1], false)
	require.Error(t, err)
	assert.IsType(t, errors.MissingSentinel{}, tracerr.Unwrap(err))
}

func TestParseIsRepeatable(t *testing.T) {
	p := NewParser(words("var x = 1 ; fn f ( a ) { return a * x } log ( f ( 2 ) )"))

	first, err := p.Parse(false)
	require.NoError(t, err)
	second, err := p.Parse(true)
	require.NoError(t, err)

	requireAST(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestParseDoesNotModifyTokens(t *testing.T) {
	tokens := words("a . b ( 1 ) |> MAP ( ++ )")
	before := append([]types.Token(nil), tokens...)

	_, err := Parse(tokens, false)
	require.NoError(t, err)
	if diff := cmp.Diff(before, tokens); diff != "" {
		t.Fatalf("tokens changed (-before +after):\n%s", diff)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"truncated binary expression", "1 +", errors.UnexpectedToken{}},
		{"uninitialized constant", "const x ;", errors.UnexpectedToken{}},
		{"non identifier after dot", "a . 1", errors.ExpectedKindGotKind{}},
		{"non identifier parameter", "fn f ( 1 ) { }", errors.UnexpectedToken{}},
		{"pipe without operation", "xs |> y", errors.UnexpectedToken{}},
		{"colored log without color", `logc ( "hi" )`, errors.UnexpectedToken{}},
		{"colored log without arguments", "logc ( )", errors.UnexpectedToken{}},
		{"colored log with integer color", `logc ( "msg" , 1 )`, errors.UnexpectedToken{}},
		{"char literal too long", "'ab'", errors.UnexpectedToken{}},
		{"do while without semicolon", "do { } while ( x )", errors.ExpectedKindGotKind{}},
		{"bad for header", "for ( x , y ) { }", errors.ExpectedOneOfKindGotKind{}},
		{"object literal without comma", "{ a b }", errors.ExpectedKindGotKind{}},
		{"unterminated block", "if ( x ) {", errors.ExpectedKindGotKind{}},
		{"unterminated call", "f ( 1 , 2", errors.ExpectedKindGotKind{}},
		{"ternary without colon", "a ? b", errors.ExpectedKindGotKind{}},
		{"integer overflow", "99999999999999999999", errors.UnexpectedToken{}},
		{"stray closing brace", "}", errors.UnexpectedToken{}},
		{"short array without semicolon", "@ 1 , 2", errors.ExpectedKindGotKind{}},
		{"for in without iterator", "for ( ; in xs ) { }", errors.UnexpectedToken{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseFailure(t, tt.input)
			assert.IsType(t, tt.want, err)

			kind, ok := errors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, errors.InvalidInput, kind)
		})
	}
}

func TestParseInvalidBoolean(t *testing.T) {
	tokens := words("x")
	tokens[1] = tok(types.BOOLEAN, "yes")

	_, err := Parse(tokens, false)
	require.Error(t, err)
	assert.IsType(t, errors.UnexpectedToken{}, tracerr.Unwrap(err))
}

func TestShortDataLookAheadPastEnd(t *testing.T) {
	_, err := Parse(words("@"), false)
	require.Error(t, err)

	kind, ok := errors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.OutOfRange, kind)
}

func TestRenderingIsStable(t *testing.T) {
	program := parse(t, `fn greet ( name ) { if ( name == null ) { return "nobody" } else { return name } } log ( greet ( "x" ) )`)

	want := `Program:
  FunctionDeclaration: greet(name) {
    ConditionalStmt: if (BinaryExpr: (Identifier: name == NullLiteral)) {
      ReturnStmt: StringLiteral: "nobody"
    }
     else {
      ReturnStmt: Identifier: name
    }
  }
  LogStmt: LogToken::LOG(CallExpr: Identifier: greet(StringLiteral: "x"))
`
	assert.Equal(t, want, program.String())
	assert.Equal(t, program.String(), program.String())

	require.Len(t, program.Body, 2)
	assert.Equal(t, ast.KindFunctionDeclaration, program.Body[0].Kind())
	assert.Equal(t, ast.KindLogStmt, program.Body[1].Kind())
}
