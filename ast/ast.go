// Package ast holds the syntax tree produced by the sQeeZ parser.
//
// Statements and expressions are closed sum types: the Statement and
// Expression interfaces carry unexported marker methods, and every variant's
// Kind tag is derived from its Go type (see kinds_gen.go), so a tag can never
// disagree with the value behind it.
package ast

import "github.com/sQeeZ-scripting-language/parser/types"

//go:generate sh -c "cd ../tool && go run . ../ast/ast.adt ../ast/kinds_gen.go ast"

type NodeKind int

type Node interface {
	Kind() NodeKind
	String() string
}

type Program struct {
	Body []Statement
}

type FunctionDeclaration struct {
	Name       types.Token
	Parameters []types.Token
	Body       []Statement
}

// ReturnStmt.Value is nil for a bare return.
type ReturnStmt struct {
	Value Expression
}

// VarBinding is one `name [= value]` entry of a declaration.
type VarBinding struct {
	Name  types.Token
	Value Expression
}

type VarDeclaration struct {
	Qualifier types.Token
	Bindings  []VarBinding
}

// ConditionalClause is one if/elif/else branch. Condition is nil for else.
type ConditionalClause struct {
	Keyword   types.Token
	Condition Expression
	Body      []Statement
}

// ConditionalStmt keeps its clauses in source order: one if, any number of
// elifs and at most one trailing else.
type ConditionalStmt struct {
	Clauses []ConditionalClause
}

type WhileStmt struct {
	Condition Expression
	Body      []Statement
}

type DoWhileStmt struct {
	Condition Expression
	Body      []Statement
}

// ForStmt is the three-clause loop; every clause may be nil.
type ForStmt struct {
	Iterator  Statement
	Condition Expression
	Increment Expression
	Body      []Statement
}

type ForInStmt struct {
	Iterator Statement
	Iterable Expression
	Body     []Statement
}

type ForOfStmt struct {
	Iterator Statement
	Iterable Expression
	Body     []Statement
}

// LogStmt.Color is only set for colored logs and always holds a
// *HexCodeLiteral.
type LogStmt struct {
	LogType  types.Token
	Messages []Expression
	Color    Expression
}

type AssignmentExpr struct {
	Assignee Expression
	Value    Expression
}

type CompoundAssignmentExpr struct {
	Assignee Expression
	Value    Expression
	Operator types.Token
}

type CallbackFunctionExpr struct {
	Parameters []types.Token
	Body       []Statement
}

type TernaryExpr struct {
	Condition Expression
	TrueExpr  Expression
	FalseExpr Expression
}

type BinaryExpr struct {
	Left     Expression
	Right    Expression
	Operator types.Token
}

type UnaryExpr struct {
	Operator types.Token
	Operand  Expression
	Prefix   bool
}

// CallExpr.Method is set for pipe calls into short notation operations,
// where Caller is the receiver.
type CallExpr struct {
	Caller Expression
	Method *Identifier
	Args   []Expression
}

type MemberExpr struct {
	Object   Expression
	Property Expression
	Computed bool
}

// Property.Value is nil for the `{ key }` shorthand.
type Property struct {
	Key   types.Token
	Value Expression
}

type ObjectLiteral struct {
	Properties []*Property
}

type ArrayLiteral struct {
	Elements []Expression
}

type Identifier struct {
	Name  string
	Token types.Token
}

type NullLiteral struct{}

type IntegerLiteral struct {
	Value int64
}

type DoubleLiteral struct {
	Value float64
}

type BooleanLiteral struct {
	Value bool
}

type CharLiteral struct {
	Value rune
}

type StringLiteral struct {
	Value string
}

type HexCodeLiteral struct {
	Value string
}

// ShortOperationLiteral applies Operation with Value inside the arguments of
// the short notation operation Type, e.g. the `*2` in `|>MAP(*2)`.
type ShortOperationLiteral struct {
	Type      types.Token
	Operation types.Token
	Value     Expression
}

type ShortSingleExpressionLiteral struct {
	Type  types.Token
	Value Expression
}

type ShortDoubleExpressionLiteral struct {
	Type   types.Token
	Value1 Expression
	Value2 Expression
}
