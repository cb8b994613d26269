package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sQeeZ-scripting-language/parser/types"
)

const indent = "  "

// render is the debug rendering behind every node's String method. The
// format is meant for people and snapshot tests, not for machines.
func render(n Node) string {
	switch v := n.(type) {
	case *Program:
		var sb strings.Builder
		sb.WriteString("Program:\n")
		for _, stmt := range v.Body {
			if stmt == nil {
				continue
			}
			sb.WriteString(indentLines(stmt.String()))
			sb.WriteString("\n")
		}
		return sb.String()
	case *FunctionDeclaration:
		return fmt.Sprintf("FunctionDeclaration: %s(%s) %s", v.Name.Value, tokenList(v.Parameters), block(v.Body))
	case *ReturnStmt:
		if v.Value == nil {
			return "ReturnStmt: null"
		}
		return "ReturnStmt: " + v.Value.String()
	case *VarDeclaration:
		bindings := make([]string, 0, len(v.Bindings))
		for _, b := range v.Bindings {
			if b.Value == nil {
				bindings = append(bindings, b.Name.Value)
				continue
			}
			bindings = append(bindings, b.Name.Value+" = "+b.Value.String())
		}
		return fmt.Sprintf("VarDeclaration: %s %s", v.Qualifier.Value, strings.Join(bindings, ", "))
	case *ConditionalStmt:
		var sb strings.Builder
		sb.WriteString("ConditionalStmt:")
		for i, clause := range v.Clauses {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(" ")
			sb.WriteString(clause.Keyword.Value)
			if clause.Condition != nil {
				sb.WriteString(" (" + clause.Condition.String() + ")")
			}
			sb.WriteString(" " + block(clause.Body))
		}
		return sb.String()
	case *WhileStmt:
		return fmt.Sprintf("WhileStmt: while (%s) %s", v.Condition, block(v.Body))
	case *DoWhileStmt:
		return fmt.Sprintf("DoWhileStmt: do %s while (%s)", block(v.Body), v.Condition)
	case *ForStmt:
		return fmt.Sprintf("ForStmt: for (%s; %s; %s) %s", optional(v.Iterator), optional(v.Condition), optional(v.Increment), block(v.Body))
	case *ForInStmt:
		return fmt.Sprintf("ForInStmt: for (%s in %s) %s", v.Iterator, v.Iterable, block(v.Body))
	case *ForOfStmt:
		return fmt.Sprintf("ForOfStmt: for (%s of %s) %s", v.Iterator, v.Iterable, block(v.Body))
	case *LogStmt:
		args := expressionList(v.Messages)
		if v.Color != nil {
			if args != "" {
				args += ", "
			}
			args += v.Color.String()
		}
		return fmt.Sprintf("LogStmt: %s(%s)", v.LogType.PlainText(), args)
	case *AssignmentExpr:
		return fmt.Sprintf("AssignmentExpr: %s = %s", v.Assignee, v.Value)
	case *CompoundAssignmentExpr:
		return fmt.Sprintf("CompoundAssignmentExpr: %s %s %s", v.Assignee, v.Operator.Value, v.Value)
	case *CallbackFunctionExpr:
		return fmt.Sprintf("CallbackFunctionExpr: (%s) => %s", tokenList(v.Parameters), block(v.Body))
	case *TernaryExpr:
		return fmt.Sprintf("TernaryExpr: %s ? %s : %s", v.Condition, v.TrueExpr, v.FalseExpr)
	case *BinaryExpr:
		return fmt.Sprintf("BinaryExpr: (%s %s %s)", v.Left, v.Operator.Value, v.Right)
	case *UnaryExpr:
		if v.Prefix {
			return "UnaryExpr: " + v.Operator.Value + v.Operand.String()
		}
		return "UnaryExpr: " + v.Operand.String() + v.Operator.Value
	case *CallExpr:
		if v.Method != nil {
			return fmt.Sprintf("CallExpr: %s|>%s(%s)", v.Caller, v.Method.Name, expressionList(v.Args))
		}
		return fmt.Sprintf("CallExpr: %s(%s)", v.Caller, expressionList(v.Args))
	case *MemberExpr:
		if v.Computed {
			return fmt.Sprintf("MemberExpr: %s[%s]", v.Object, v.Property)
		}
		return fmt.Sprintf("MemberExpr: %s.%s", v.Object, v.Property)
	case *Property:
		if v.Value == nil {
			return "Property: " + v.Key.Value
		}
		return fmt.Sprintf("Property: %s = %s", v.Key.Value, v.Value)
	case *ObjectLiteral:
		if len(v.Properties) == 0 {
			return "ObjectLiteral: {}"
		}
		props := make([]string, 0, len(v.Properties))
		for _, p := range v.Properties {
			props = append(props, p.String())
		}
		return "ObjectLiteral: { " + strings.Join(props, ", ") + " }"
	case *ArrayLiteral:
		return "ArrayLiteral: [" + expressionList(v.Elements) + "]"
	case *Identifier:
		return "Identifier: " + v.Name
	case *NullLiteral:
		return "NullLiteral"
	case *IntegerLiteral:
		return "IntegerLiteral: " + strconv.FormatInt(v.Value, 10)
	case *DoubleLiteral:
		return "DoubleLiteral: " + strconv.FormatFloat(v.Value, 'f', -1, 64)
	case *BooleanLiteral:
		return "BooleanLiteral: " + strconv.FormatBool(v.Value)
	case *CharLiteral:
		return "CharLiteral: '" + string(v.Value) + "'"
	case *StringLiteral:
		return "StringLiteral: \"" + v.Value + "\""
	case *HexCodeLiteral:
		return "HexCodeLiteral: " + v.Value
	case *ShortOperationLiteral:
		return fmt.Sprintf("ShortOperationLiteral: %s(%s%s)", v.Type.PlainText(), v.Operation.Value, v.Value)
	case *ShortSingleExpressionLiteral:
		return fmt.Sprintf("ShortSingleExpressionLiteral: %s(%s)", v.Type.PlainText(), v.Value)
	case *ShortDoubleExpressionLiteral:
		return fmt.Sprintf("ShortDoubleExpressionLiteral: %s(%s, %s)", v.Type.PlainText(), v.Value1, v.Value2)
	}
	panic(fmt.Sprintf("ast: unhandled node %T", n))
}

func block(body []Statement) string {
	if len(body) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range body {
		sb.WriteString(indentLines(stmt.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func indentLines(s string) string {
	return indent + strings.ReplaceAll(s, "\n", "\n"+indent)
}

func optional(s Statement) string {
	if s == nil {
		return ""
	}
	return s.String()
}

func tokenList(tokens []types.Token) string {
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	return strings.Join(values, ", ")
}

func expressionList(exprs []Expression) string {
	values := make([]string, 0, len(exprs))
	for _, e := range exprs {
		values = append(values, e.String())
	}
	return strings.Join(values, ", ")
}
