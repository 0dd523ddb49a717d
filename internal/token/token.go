package token

import (
	"fmt"
	"strings"
)

// Kind is the category of a token. Payload-free comparisons go through Kind.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Literals
	INT
	FLOAT
	HEX
	BINARY
	STRING
	INTERPOLATED_STRING

	IDENTIFIER
	KEYWORD
	BINARY_OP
	UNARY_OP

	// Punctuation
	THIN_ARROW
	FAT_ARROW
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	SEMICOLON
	COLON
	PERIOD
	COMMA
	TILDE
)

var kindNames = [...]string{
	ILLEGAL:             "ILLEGAL",
	EOF:                 "EOF",
	INT:                 "INT",
	FLOAT:               "FLOAT",
	HEX:                 "HEX",
	BINARY:              "BINARY",
	STRING:              "STRING",
	INTERPOLATED_STRING: "INTERPOLATED_STRING",
	IDENTIFIER:          "IDENTIFIER",
	KEYWORD:             "KEYWORD",
	BINARY_OP:           "BINARY_OP",
	UNARY_OP:            "UNARY_OP",
	THIN_ARROW:          "THIN_ARROW",
	FAT_ARROW:           "FAT_ARROW",
	LEFT_PAREN:          "LEFT_PAREN",
	RIGHT_PAREN:         "RIGHT_PAREN",
	LEFT_BRACKET:        "LEFT_BRACKET",
	RIGHT_BRACKET:       "RIGHT_BRACKET",
	LEFT_BRACE:          "LEFT_BRACE",
	RIGHT_BRACE:         "RIGHT_BRACE",
	SEMICOLON:           "SEMICOLON",
	COLON:               "COLON",
	PERIOD:              "PERIOD",
	COMMA:               "COMMA",
	TILDE:               "TILDE",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Describe returns the phrase used for k in "expected X, found Y" messages.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case INT, HEX, BINARY:
		return "integer literal"
	case FLOAT:
		return "float literal"
	case STRING, INTERPOLATED_STRING:
		return "string literal"
	case IDENTIFIER:
		return "identifier"
	case KEYWORD:
		return "keyword"
	case BINARY_OP, UNARY_OP:
		return "operator"
	case THIN_ARROW:
		return "'->'"
	case FAT_ARROW:
		return "'=>'"
	}
	for c, pk := range punctuation {
		if pk == k {
			return "'" + string(c) + "'"
		}
	}
	return strings.ToLower(k.String())
}

// PartKind distinguishes the pieces of an interpolated string.
type PartKind int

const (
	TEXT PartKind = iota
	INTERPOLATION
)

func (k PartKind) String() string {
	if k == INTERPOLATION {
		return "Interpolation"
	}
	return "Text"
}

// StringPart is one segment of an interpolated string. TEXT parts hold
// escape-decoded text; INTERPOLATION parts hold the raw code between the
// braces. Offset and Start locate the first byte of Value in the enclosing
// source, which lets the fragment be re-lexed in outer coordinates.
type StringPart struct {
	Kind   PartKind
	Value  string
	Offset int
	Start  Location
}

// Token is an immutable classified slice of source text.
type Token struct {
	Kind   Kind
	Span   Span
	Start  Location
	End    Location
	Lexeme string // source[Span.Start:Span.End]

	Int      int64  // INT, HEX, BINARY
	Float    float64
	Str      string // decoded STRING contents
	Parts    []StringPart
	Keyword  Keyword
	BinaryOp BinaryOperator
	UnaryOp  UnaryOperator
}

// Is reports whether t has kind k, ignoring its payload.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsKeyword reports whether t is the keyword kw.
func (t Token) IsKeyword(kw Keyword) bool { return t.Kind == KEYWORD && t.Keyword == kw }

// IsBinary reports whether t is the binary operator op.
func (t Token) IsBinary(op BinaryOperator) bool { return t.Kind == BINARY_OP && t.BinaryOp == op }

// IsUnary reports whether t is the unary operator op.
func (t Token) IsUnary(op UnaryOperator) bool { return t.Kind == UNARY_OP && t.UnaryOp == op }

// IsIntegral reports whether t is an integer literal of any radix.
func (t Token) IsIntegral() bool {
	return t.Kind == INT || t.Kind == HEX || t.Kind == BINARY
}

// Describe names t for diagnostics: keywords and operators by spelling,
// everything else by category.
func (t Token) Describe() string {
	switch t.Kind {
	case KEYWORD:
		return "keyword '" + t.Keyword.String() + "'"
	case BINARY_OP:
		return "'" + t.BinaryOp.String() + "'"
	case UNARY_OP:
		return "'" + t.UnaryOp.String() + "'"
	case IDENTIFIER:
		return "identifier '" + t.Lexeme + "'"
	}
	return t.Kind.Describe()
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case KEYWORD, IDENTIFIER, BINARY_OP, UNARY_OP:
		return fmt.Sprintf("%s(%s)@%s", t.Kind, t.Lexeme, t.Start)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Start)
}
