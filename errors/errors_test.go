package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ztrue/tracerr"

	"github.com/sQeeZ-scripting-language/parser/types"
)

func TestKindOf(t *testing.T) {
	got := types.NewToken(types.SEMICOLON, "", types.Position{Line: 2, Column: 4, Filename: "m.sqzt"})

	tests := []struct {
		name string
		err  error
		kind Kind
		ok   bool
	}{
		{"plain failure", UnexpectedToken{Got: got}, InvalidInput, true},
		{"traced failure", tracerr.Wrap(ExpectedKindGotKind{Got: got}), InvalidInput, true},
		{"wrapped failure", fmt.Errorf("parse: %w", LookAheadPastEnd{Steps: 2}), OutOfRange, true},
		{"foreign error", stderrors.New("boom"), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestMessages(t *testing.T) {
	got := types.NewToken(types.SEMICOLON, "", types.Position{Line: 2, Column: 4, Filename: "m.sqzt"})

	assert.Equal(t,
		`expected ')': got ";" (SyntaxToken::SEMICOLON), expected SyntaxToken::CLOSE_PARENTHESIS. m.sqzt:2:4-2:4`,
		ExpectedKindGotKind{Expected: "SyntaxToken::CLOSE_PARENTHESIS", Got: got, Context: "expected ')'"}.Error())

	assert.Equal(t,
		`bad loop: got ";" (SyntaxToken::SEMICOLON), expected one of KeywordToken::IN, KeywordToken::OF. m.sqzt:2:4-2:4`,
		ExpectedOneOfKindGotKind{Expected: []string{"KeywordToken::IN", "KeywordToken::OF"}, Got: got, Context: "bad loop"}.Error())

	assert.Equal(t,
		"token stream is missing its BasicToken::EOF marker",
		MissingSentinel{Expected: "BasicToken::EOF"}.Error())

	assert.Equal(t,
		"look ahead of 2 tokens runs past the end of the stream (1 left)",
		LookAheadPastEnd{Steps: 2, Remaining: 1}.Error())

	assert.Equal(t, "Kind(7)", Kind(7).String())
}
