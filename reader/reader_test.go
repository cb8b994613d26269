package reader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"

	"github.com/sQeeZ-scripting-language/parser/types"
)

const dump = `
- kind: BasicToken::INIT
- kind: KeywordToken::VAR
  line: 1
  column: 1
- kind: BasicToken::IDENTIFIER
  value: answer
  line: 1
  column: 5
- kind: OperatorToken::ASSIGNMENT
  line: 1
  column: 12
- kind: DataToken::INTEGER
  value: "42"
  line: 1
  column: 14
- kind: BasicToken::EOF
  line: 2
`

func TestReadTokens(t *testing.T) {
	tokens, err := ReadTokens(strings.NewReader(dump), "answer.sqzt")
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	kinds := make([]types.TokenKind, 0, len(tokens))
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
		values = append(values, tok.Value)
	}
	assert.Equal(t, []types.TokenKind{types.INIT, types.VAR, types.IDENTIFIER, types.ASSIGNMENT, types.INTEGER, types.EOF}, kinds)
	assert.Equal(t, []string{"", "var", "answer", "=", "42", ""}, values)

	ident := tokens[2]
	assert.Equal(t, types.Position{Line: 1, Column: 5, Filename: "answer.sqzt"}, ident.Location.From)
	assert.Equal(t, types.Position{Line: 1, Column: 10, Filename: "answer.sqzt"}, ident.Location.To)
}

func TestReadTokensUnknownKind(t *testing.T) {
	_, err := ReadTokens(strings.NewReader("- kind: BasicToken::INIT\n- kind: KeywordToken::LOOP\n"), "bad.sqzt")
	require.Error(t, err)
	assert.Equal(t, UnknownKind{Index: 1, Kind: "KeywordToken::LOOP"}, tracerr.Unwrap(err))
}

func TestReadTokensMalformed(t *testing.T) {
	_, err := ReadTokens(strings.NewReader("kind: [unclosed"), "bad.sqzt")
	assert.Error(t, err)
}

func TestWriteTokensOmitsFixedSpellings(t *testing.T) {
	tokens, err := ReadTokens(strings.NewReader(dump), "answer.sqzt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, tokens))
	assert.NotContains(t, buf.String(), "value: var")
	assert.Contains(t, buf.String(), "value: answer")

	again, err := ReadTokens(&buf, "answer.sqzt")
	require.NoError(t, err)
	if diff := cmp.Diff(tokens, again); diff != "" {
		t.Fatalf("tokens changed (-want +got):\n%s", diff)
	}
}

func TestWriteListing(t *testing.T) {
	tokens, err := ReadTokens(strings.NewReader(dump), "answer.sqzt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteListing(&buf, tokens))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(tokens))
	assert.Equal(t, `BasicToken::IDENTIFIER "answer" answer.sqzt:1:5-1:10`, lines[2])
}
