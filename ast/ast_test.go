package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sQeeZ-scripting-language/parser/types"
)

func tok(kind types.TokenKind, value string) types.Token {
	return types.NewToken(kind, value, types.Position{})
}

func id(name string) *Identifier {
	return &Identifier{Name: name, Token: tok(types.IDENTIFIER, name)}
}

func TestKindMatchesVariant(t *testing.T) {
	tests := []struct {
		node Node
		kind NodeKind
		name string
	}{
		{&Program{}, KindProgram, "Program"},
		{&ForOfStmt{}, KindForOfStmt, "ForOfStmt"},
		{&Property{}, KindProperty, "Property"},
		{&HexCodeLiteral{}, KindHexCodeLiteral, "HexCodeLiteral"},
		{&ShortDoubleExpressionLiteral{}, KindShortDoubleExpressionLiteral, "ShortDoubleExpressionLiteral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.node.Kind())
			assert.Equal(t, tt.name, tt.node.Kind().String())
		})
	}

	assert.Equal(t, "NodeKind(999)", NodeKind(999).String())
}

func TestRender(t *testing.T) {
	mapTok := tok(types.MAP, "")

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "function",
			node: &FunctionDeclaration{
				Name:       tok(types.IDENTIFIER, "f"),
				Parameters: []types.Token{tok(types.IDENTIFIER, "a"), tok(types.IDENTIFIER, "b")},
			},
			want: "FunctionDeclaration: f(a, b) {}",
		},
		{
			name: "bare return",
			node: &ReturnStmt{},
			want: "ReturnStmt: null",
		},
		{
			name: "declaration",
			node: &VarDeclaration{
				Qualifier: tok(types.VAR, ""),
				Bindings:  []VarBinding{{Name: tok(types.IDENTIFIER, "x"), Value: &IntegerLiteral{Value: 1}}, {Name: tok(types.IDENTIFIER, "y")}},
			},
			want: "VarDeclaration: var x = IntegerLiteral: 1, y",
		},
		{
			name: "nested blocks",
			node: &WhileStmt{
				Condition: &BooleanLiteral{Value: true},
				Body: []Statement{&DoWhileStmt{
					Condition: id("x"),
					Body:      []Statement{id("y")},
				}},
			},
			want: "WhileStmt: while (BooleanLiteral: true) {\n  DoWhileStmt: do {\n    Identifier: y\n  } while (Identifier: x)\n}",
		},
		{
			name: "empty for",
			node: &ForStmt{},
			want: "ForStmt: for (; ; ) {}",
		},
		{
			name: "colored log",
			node: &LogStmt{
				LogType:  tok(types.LOGC, ""),
				Messages: []Expression{&StringLiteral{Value: "hi"}},
				Color:    &HexCodeLiteral{Value: "#fff"},
			},
			want: `LogStmt: LogToken::LOGC(StringLiteral: "hi", HexCodeLiteral: #fff)`,
		},
		{
			name: "postfix and prefix",
			node: &BinaryExpr{
				Left:     &UnaryExpr{Operator: tok(types.INCREMENT, ""), Operand: id("a")},
				Right:    &UnaryExpr{Operator: tok(types.NOT, ""), Operand: id("b"), Prefix: true},
				Operator: tok(types.AND, ""),
			},
			want: "BinaryExpr: (UnaryExpr: Identifier: a++ && UnaryExpr: !Identifier: b)",
		},
		{
			name: "pipe call",
			node: &CallExpr{
				Caller: id("xs"),
				Method: &Identifier{Name: "map", Token: mapTok},
				Args:   []Expression{&ShortOperationLiteral{Type: mapTok, Operation: tok(types.MULTIPLICATION, ""), Value: &IntegerLiteral{Value: 2}}},
			},
			want: "CallExpr: Identifier: xs|>map(ShortOperationLiteral: ShortNotationToken::MAP(*IntegerLiteral: 2))",
		},
		{
			name: "literals",
			node: &ArrayLiteral{Elements: []Expression{
				&NullLiteral{},
				&DoubleLiteral{Value: 0.5},
				&CharLiteral{Value: 'z'},
				&ObjectLiteral{},
			}},
			want: "ArrayLiteral: [NullLiteral, DoubleLiteral: 0.5, CharLiteral: 'z', ObjectLiteral: {}]",
		},
		{
			name: "computed member",
			node: &MemberExpr{Object: id("a"), Property: &IntegerLiteral{Value: 0}, Computed: true},
			want: "MemberExpr: Identifier: a[IntegerLiteral: 0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestRenderProgramIndentsEveryLine(t *testing.T) {
	program := &Program{Body: []Statement{
		&ConditionalStmt{Clauses: []ConditionalClause{
			{Keyword: tok(types.IF, ""), Condition: id("a"), Body: []Statement{id("b")}},
			{Keyword: tok(types.ELSE, "")},
		}},
	}}

	want := "Program:\n" +
		"  ConditionalStmt: if (Identifier: a) {\n" +
		"    Identifier: b\n" +
		"  }\n" +
		"   else {}\n"
	assert.Equal(t, want, program.String())
}
