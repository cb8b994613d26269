package types

import "fmt"

// Category is the coarse token class assigned by the lexer.
type Category int

const (
	BasicToken Category = iota
	KeywordToken
	OperatorToken
	SyntaxToken
	DataToken
	LogicalToken
	LogToken
	ShortNotationToken
)

var categoryNames = [...]string{
	BasicToken:         "BasicToken",
	KeywordToken:       "KeywordToken",
	OperatorToken:      "OperatorToken",
	SyntaxToken:        "SyntaxToken",
	DataToken:          "DataToken",
	LogicalToken:       "LogicalToken",
	LogToken:           "LogToken",
	ShortNotationToken: "ShortNotationToken",
}

func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// TokenKind is a category-specific sub-kind. Each category has its own Go
// type, so kinds of different categories never compare equal.
type TokenKind interface {
	Category() Category
	String() string
	// Text is the fixed source spelling, empty for kinds whose text varies.
	Text() string
}

// PlainText returns the canonical "<Category>::<SUBKIND>" name of k.
func PlainText(k TokenKind) string {
	return k.Category().String() + "::" + k.String()
}

type spelling struct {
	name string
	text string
}

func nameAt(table []spelling, i int, typ string) string {
	if i >= 0 && i < len(table) {
		return table[i].name
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}

func textAt(table []spelling, i int) string {
	if i >= 0 && i < len(table) {
		return table[i].text
	}
	return ""
}

type Basic int

const (
	INIT Basic = iota
	EOF
	IDENTIFIER
	COMMENT
	UNKNOWN
)

var basicTable = [...]spelling{
	INIT:       {"INIT", ""},
	EOF:        {"EOF", ""},
	IDENTIFIER: {"IDENTIFIER", ""},
	COMMENT:    {"COMMENT", ""},
	UNKNOWN:    {"UNKNOWN", ""},
}

func (k Basic) Category() Category { return BasicToken }
func (k Basic) String() string     { return nameAt(basicTable[:], int(k), "Basic") }
func (k Basic) Text() string       { return textAt(basicTable[:], int(k)) }

type Keyword int

const (
	FUNCTION Keyword = iota
	VAR
	CONST
	RETURN
	IF
	ELIF
	ELSE
	DO
	WHILE
	FOR
	IN
	OF
)

var keywordTable = [...]spelling{
	FUNCTION: {"FUNCTION", "fn"},
	VAR:      {"VAR", "var"},
	CONST:    {"CONST", "const"},
	RETURN:   {"RETURN", "return"},
	IF:       {"IF", "if"},
	ELIF:     {"ELIF", "elif"},
	ELSE:     {"ELSE", "else"},
	DO:       {"DO", "do"},
	WHILE:    {"WHILE", "while"},
	FOR:      {"FOR", "for"},
	IN:       {"IN", "in"},
	OF:       {"OF", "of"},
}

func (k Keyword) Category() Category { return KeywordToken }
func (k Keyword) String() string     { return nameAt(keywordTable[:], int(k), "Keyword") }
func (k Keyword) Text() string       { return textAt(keywordTable[:], int(k)) }

type Operator int

const (
	ADDITION Operator = iota
	SUBTRACTION
	MULTIPLICATION
	DIVISION
	MODULUS
	POTENTIATION
	INCREMENT
	DECREMENT
	ASSIGNMENT
	ADDITION_ASSIGNMENT
	SUBTRACTION_ASSIGNMENT
	MULTIPLICATION_ASSIGNMENT
	DIVISION_ASSIGNMENT
	MODULUS_ASSIGNMENT
	POTENTIATION_ASSIGNMENT
)

var operatorTable = [...]spelling{
	ADDITION:                  {"ADDITION", "+"},
	SUBTRACTION:               {"SUBTRACTION", "-"},
	MULTIPLICATION:            {"MULTIPLICATION", "*"},
	DIVISION:                  {"DIVISION", "/"},
	MODULUS:                   {"MODULUS", "%"},
	POTENTIATION:              {"POTENTIATION", "**"},
	INCREMENT:                 {"INCREMENT", "++"},
	DECREMENT:                 {"DECREMENT", "--"},
	ASSIGNMENT:                {"ASSIGNMENT", "="},
	ADDITION_ASSIGNMENT:       {"ADDITION_ASSIGNMENT", "+="},
	SUBTRACTION_ASSIGNMENT:    {"SUBTRACTION_ASSIGNMENT", "-="},
	MULTIPLICATION_ASSIGNMENT: {"MULTIPLICATION_ASSIGNMENT", "*="},
	DIVISION_ASSIGNMENT:       {"DIVISION_ASSIGNMENT", "/="},
	MODULUS_ASSIGNMENT:        {"MODULUS_ASSIGNMENT", "%="},
	POTENTIATION_ASSIGNMENT:   {"POTENTIATION_ASSIGNMENT", "**="},
}

func (k Operator) Category() Category { return OperatorToken }
func (k Operator) String() string     { return nameAt(operatorTable[:], int(k), "Operator") }
func (k Operator) Text() string       { return textAt(operatorTable[:], int(k)) }

// IsCompoundAssignment reports whether k is one of the op-and-assign forms.
func (k Operator) IsCompoundAssignment() bool {
	return k >= ADDITION_ASSIGNMENT && k <= POTENTIATION_ASSIGNMENT
}

type Syntax int

const (
	SEMICOLON Syntax = iota
	COMMA
	COLON
	DOT
	QUESTION_MARK
	OPEN_PARENTHESIS
	CLOSE_PARENTHESIS
	OPEN_BRACE
	CLOSE_BRACE
	OPEN_BRACKET
	CLOSE_BRACKET
	CALLBACK_FUNCTION
	PIPE_OPERATOR
	SHORT_NOTATION
	SINGLE_QUOTE
	DOUBLE_QUOTE
	INLINE_COMMENT
)

var syntaxTable = [...]spelling{
	SEMICOLON:         {"SEMICOLON", ";"},
	COMMA:             {"COMMA", ","},
	COLON:             {"COLON", ":"},
	DOT:               {"DOT", "."},
	QUESTION_MARK:     {"QUESTION_MARK", "?"},
	OPEN_PARENTHESIS:  {"OPEN_PARENTHESIS", "("},
	CLOSE_PARENTHESIS: {"CLOSE_PARENTHESIS", ")"},
	OPEN_BRACE:        {"OPEN_BRACE", "{"},
	CLOSE_BRACE:       {"CLOSE_BRACE", "}"},
	OPEN_BRACKET:      {"OPEN_BRACKET", "["},
	CLOSE_BRACKET:     {"CLOSE_BRACKET", "]"},
	CALLBACK_FUNCTION: {"CALLBACK_FUNCTION", "=>"},
	PIPE_OPERATOR:     {"PIPE_OPERATOR", "|>"},
	SHORT_NOTATION:    {"SHORT_NOTATION", "@"},
	SINGLE_QUOTE:      {"SINGLE_QUOTE", "'"},
	DOUBLE_QUOTE:      {"DOUBLE_QUOTE", "\""},
	INLINE_COMMENT:    {"INLINE_COMMENT", "//"},
}

func (k Syntax) Category() Category { return SyntaxToken }
func (k Syntax) String() string     { return nameAt(syntaxTable[:], int(k), "Syntax") }
func (k Syntax) Text() string       { return textAt(syntaxTable[:], int(k)) }

type Data int

const (
	STRING Data = iota
	CHAR
	INTEGER
	DOUBLE
	BOOLEAN
	NULL_VALUE
	HEX_CODE
)

var dataTable = [...]spelling{
	STRING:     {"STRING", ""},
	CHAR:       {"CHAR", ""},
	INTEGER:    {"INTEGER", ""},
	DOUBLE:     {"DOUBLE", ""},
	BOOLEAN:    {"BOOLEAN", ""},
	NULL_VALUE: {"NULL_VALUE", "null"},
	HEX_CODE:   {"HEX_CODE", ""},
}

func (k Data) Category() Category { return DataToken }
func (k Data) String() string     { return nameAt(dataTable[:], int(k), "Data") }
func (k Data) Text() string       { return textAt(dataTable[:], int(k)) }

type Logical int

const (
	AND Logical = iota
	OR
	NOT
	EQUAL
	NOT_EQUAL
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL
)

var logicalTable = [...]spelling{
	AND:           {"AND", "&&"},
	OR:            {"OR", "||"},
	NOT:           {"NOT", "!"},
	EQUAL:         {"EQUAL", "=="},
	NOT_EQUAL:     {"NOT_EQUAL", "!="},
	LESS:          {"LESS", "<"},
	GREATER:       {"GREATER", ">"},
	LESS_EQUAL:    {"LESS_EQUAL", "<="},
	GREATER_EQUAL: {"GREATER_EQUAL", ">="},
}

func (k Logical) Category() Category { return LogicalToken }
func (k Logical) String() string     { return nameAt(logicalTable[:], int(k), "Logical") }
func (k Logical) Text() string       { return textAt(logicalTable[:], int(k)) }

type Log int

const (
	LOG Log = iota
	LOGC
	WARN
	ERROR
)

var logTable = [...]spelling{
	LOG:   {"LOG", "log"},
	LOGC:  {"LOGC", "logc"},
	WARN:  {"WARN", "warn"},
	ERROR: {"ERROR", "error"},
}

func (k Log) Category() Category { return LogToken }
func (k Log) String() string     { return nameAt(logTable[:], int(k), "Log") }
func (k Log) Text() string       { return textAt(logTable[:], int(k)) }

// ShortNotation kinds name the built-in operations reachable through the
// pipe operator. They are spelled in upper case in source.
type ShortNotation int

const (
	LENGTH ShortNotation = iota
	CONCAT
	INCLUDES
	INDEX_OF
	LAST_INDEX_OF
	JOIN
	SLICE
	SPLICE
	PUSH
	POP
	SHIFT
	UNSHIFT
	REVERSE
	SORT
	MAP
	FILTER
	REDUCE
	FIND
	FIND_INDEX
	FIND_LAST
	FIND_LAST_INDEX
	FILL
	FLAT
	FLAT_MAP
	EVERY
	SOME
	FOR_EACH
	KEYS
	VALUES
	ENTRIES
	CHAR_AT
	TO_UPPER
	TO_LOWER
	TRIM
	TRIM_START
	TRIM_END
	SPLIT
	REPLACE
	REPLACE_ALL
	STARTS_WITH
	ENDS_WITH
	PAD_START
	PAD_END
	REPEAT
	SUBSTRING
)

var shortNotationTable = [...]spelling{
	LENGTH:          {"LENGTH", "LENGTH"},
	CONCAT:          {"CONCAT", "CONCAT"},
	INCLUDES:        {"INCLUDES", "INCLUDES"},
	INDEX_OF:        {"INDEX_OF", "INDEX_OF"},
	LAST_INDEX_OF:   {"LAST_INDEX_OF", "LAST_INDEX_OF"},
	JOIN:            {"JOIN", "JOIN"},
	SLICE:           {"SLICE", "SLICE"},
	SPLICE:          {"SPLICE", "SPLICE"},
	PUSH:            {"PUSH", "PUSH"},
	POP:             {"POP", "POP"},
	SHIFT:           {"SHIFT", "SHIFT"},
	UNSHIFT:         {"UNSHIFT", "UNSHIFT"},
	REVERSE:         {"REVERSE", "REVERSE"},
	SORT:            {"SORT", "SORT"},
	MAP:             {"MAP", "MAP"},
	FILTER:          {"FILTER", "FILTER"},
	REDUCE:          {"REDUCE", "REDUCE"},
	FIND:            {"FIND", "FIND"},
	FIND_INDEX:      {"FIND_INDEX", "FIND_INDEX"},
	FIND_LAST:       {"FIND_LAST", "FIND_LAST"},
	FIND_LAST_INDEX: {"FIND_LAST_INDEX", "FIND_LAST_INDEX"},
	FILL:            {"FILL", "FILL"},
	FLAT:            {"FLAT", "FLAT"},
	FLAT_MAP:        {"FLAT_MAP", "FLAT_MAP"},
	EVERY:           {"EVERY", "EVERY"},
	SOME:            {"SOME", "SOME"},
	FOR_EACH:        {"FOR_EACH", "FOR_EACH"},
	KEYS:            {"KEYS", "KEYS"},
	VALUES:          {"VALUES", "VALUES"},
	ENTRIES:         {"ENTRIES", "ENTRIES"},
	CHAR_AT:         {"CHAR_AT", "CHAR_AT"},
	TO_UPPER:        {"TO_UPPER", "TO_UPPER"},
	TO_LOWER:        {"TO_LOWER", "TO_LOWER"},
	TRIM:            {"TRIM", "TRIM"},
	TRIM_START:      {"TRIM_START", "TRIM_START"},
	TRIM_END:        {"TRIM_END", "TRIM_END"},
	SPLIT:           {"SPLIT", "SPLIT"},
	REPLACE:         {"REPLACE", "REPLACE"},
	REPLACE_ALL:     {"REPLACE_ALL", "REPLACE_ALL"},
	STARTS_WITH:     {"STARTS_WITH", "STARTS_WITH"},
	ENDS_WITH:       {"ENDS_WITH", "ENDS_WITH"},
	PAD_START:       {"PAD_START", "PAD_START"},
	PAD_END:         {"PAD_END", "PAD_END"},
	REPEAT:          {"REPEAT", "REPEAT"},
	SUBSTRING:       {"SUBSTRING", "SUBSTRING"},
}

func (k ShortNotation) Category() Category { return ShortNotationToken }
func (k ShortNotation) String() string {
	return nameAt(shortNotationTable[:], int(k), "ShortNotation")
}
func (k ShortNotation) Text() string { return textAt(shortNotationTable[:], int(k)) }

var (
	kindsByPlainText = map[string]TokenKind{}
	kindsByCategory  = map[Category][]TokenKind{}
)

func register(k TokenKind) {
	kindsByPlainText[PlainText(k)] = k
	kindsByCategory[k.Category()] = append(kindsByCategory[k.Category()], k)
}

func init() {
	for i := range basicTable {
		register(Basic(i))
	}
	for i := range keywordTable {
		register(Keyword(i))
	}
	for i := range operatorTable {
		register(Operator(i))
	}
	for i := range syntaxTable {
		register(Syntax(i))
	}
	for i := range dataTable {
		register(Data(i))
	}
	for i := range logicalTable {
		register(Logical(i))
	}
	for i := range logTable {
		register(Log(i))
	}
	for i := range shortNotationTable {
		register(ShortNotation(i))
	}
}

// ParseKind resolves a canonical plain-text name such as
// "SyntaxToken::OPEN_BRACE" back to its kind.
func ParseKind(plain string) (TokenKind, bool) {
	k, ok := kindsByPlainText[plain]
	return k, ok
}

// Kinds lists every sub-kind of c in declaration order.
func Kinds(c Category) []TokenKind {
	return append([]TokenKind(nil), kindsByCategory[c]...)
}
