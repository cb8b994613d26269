package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"

	"github.com/sQeeZ-scripting-language/parser/ast"
	"github.com/sQeeZ-scripting-language/parser/types"
)

var spelledKinds = map[string]types.TokenKind{}

func init() {
	for _, c := range []types.Category{
		types.KeywordToken,
		types.OperatorToken,
		types.SyntaxToken,
		types.DataToken,
		types.LogicalToken,
		types.LogToken,
		types.ShortNotationToken,
	} {
		for _, k := range types.Kinds(c) {
			if k.Text() != "" {
				spelledKinds[k.Text()] = k
			}
		}
	}
}

// words turns space separated source into the tokens the lexer would
// produce for it. Quoted words expand to quote/content/quote, "//text"
// becomes a comment and unknown words are identifiers.
func words(src string) []types.Token {
	toks := []types.Token{tok(types.INIT, "")}
	for _, w := range strings.Fields(src) {
		switch {
		case strings.HasPrefix(w, "//"):
			toks = append(toks, tok(types.INLINE_COMMENT, ""))
			if text := w[2:]; text != "" {
				toks = append(toks, tok(types.COMMENT, text))
			}
		case len(w) >= 2 && w[0] == '"' && w[len(w)-1] == '"':
			toks = append(toks, tok(types.DOUBLE_QUOTE, ""))
			if text := w[1 : len(w)-1]; text != "" {
				toks = append(toks, tok(types.STRING, text))
			}
			toks = append(toks, tok(types.DOUBLE_QUOTE, ""))
		case len(w) >= 3 && w[0] == '\'' && w[len(w)-1] == '\'':
			toks = append(toks,
				tok(types.SINGLE_QUOTE, ""),
				tok(types.CHAR, w[1:len(w)-1]),
				tok(types.SINGLE_QUOTE, ""))
		case spelledKinds[w] != nil:
			toks = append(toks, tok(spelledKinds[w], w))
		case w == "true" || w == "false":
			toks = append(toks, tok(types.BOOLEAN, w))
		case w[0] == '#':
			toks = append(toks, tok(types.HEX_CODE, w))
		case strings.Trim(w, "0123456789") == "":
			toks = append(toks, tok(types.INTEGER, w))
		case strings.Trim(w, "0123456789.") == "" && strings.Count(w, ".") == 1:
			toks = append(toks, tok(types.DOUBLE, w))
		default:
			toks = append(toks, tok(types.IDENTIFIER, w))
		}
	}
	toks = append(toks, tok(types.EOF, ""))

	for i := range toks {
		at := types.Position{Line: 1, Column: i + 1, Filename: "test.sqz"}
		toks[i].Location = types.SpanOf(at, toks[i].Value)
	}
	return toks
}

func tok(kind types.TokenKind, value string) types.Token {
	if value == "" {
		value = kind.Text()
	}
	return types.Token{Kind: kind, Value: value}
}

func op(text string) types.Token {
	return tok(spelledKinds[text], text)
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name, Token: tok(types.IDENTIFIER, name)}
}

func integer(v int64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Value: v}
}

var astOpts = cmp.Options{
	cmpopts.IgnoreFields(types.Token{}, "Location"),
	cmpopts.EquateEmpty(),
}

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := Parse(words(src), false)
	require.NoError(t, err, "parsing %q", src)
	return program
}

// parseOne parses src and returns its only top-level statement.
func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	program := parse(t, src)
	require.Len(t, program.Body, 1, "parsing %q", src)
	return program.Body[0]
}

// parseFailure parses src, expects it to fail and returns the unwrapped
// failure.
func parseFailure(t *testing.T, src string) error {
	t.Helper()
	_, err := Parse(words(src), false)
	require.Error(t, err, "parsing %q", src)
	return tracerr.Unwrap(err)
}

func requireAST(t *testing.T, want, got interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, astOpts); diff != "" {
		t.Fatalf("AST mismatch (-want +got):\n%s", diff)
	}
}
