// Package ast defines the syntax tree produced by the parser. Nodes are plain
// data: every child is owned by exactly one parent and every node records the
// span of source it was parsed from.
package ast

import "carbide/internal/token"

type Node interface {
	NodeSpan() token.Span
	NodeType() NodeType
	String() string
}

type Stmt interface {
	Node
	isStmt()
}

type Expr interface {
	Node
	isExpr()
}

// TypeExpr is a type annotation.
type TypeExpr interface {
	Node
	isType()
}

type NodeType int

const (
	ILLEGAL NodeType = iota
	PROGRAM
	IDENT
	PARAM

	// Statements
	LET_STMT
	FUNCTION_DECL
	RETURN_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	BLOCK_STMT
	EXPR_STMT
	BREAK_STMT
	CONTINUE_STMT

	// Expressions
	LITERAL_EXPR
	IDENT_EXPR
	BINARY_EXPR
	UNARY_EXPR
	ASSIGN_EXPR
	CALL_EXPR
	INDEX_EXPR
	MEMBER_EXPR
	GROUP_EXPR
	ARRAY_EXPR
	INTERPOLATED_STRING_EXPR

	// Types
	NAMED_TYPE
	ARRAY_TYPE
	FUNCTION_TYPE
	UNIT_TYPE
)

var nodeTypeNames = [...]string{
	ILLEGAL:                  "ILLEGAL",
	PROGRAM:                  "PROGRAM",
	IDENT:                    "IDENT",
	PARAM:                    "PARAM",
	LET_STMT:                 "LET_STMT",
	FUNCTION_DECL:            "FUNCTION_DECL",
	RETURN_STMT:              "RETURN_STMT",
	IF_STMT:                  "IF_STMT",
	WHILE_STMT:               "WHILE_STMT",
	FOR_STMT:                 "FOR_STMT",
	BLOCK_STMT:               "BLOCK_STMT",
	EXPR_STMT:                "EXPR_STMT",
	BREAK_STMT:               "BREAK_STMT",
	CONTINUE_STMT:            "CONTINUE_STMT",
	LITERAL_EXPR:             "LITERAL_EXPR",
	IDENT_EXPR:               "IDENT_EXPR",
	BINARY_EXPR:              "BINARY_EXPR",
	UNARY_EXPR:               "UNARY_EXPR",
	ASSIGN_EXPR:              "ASSIGN_EXPR",
	CALL_EXPR:                "CALL_EXPR",
	INDEX_EXPR:               "INDEX_EXPR",
	MEMBER_EXPR:              "MEMBER_EXPR",
	GROUP_EXPR:               "GROUP_EXPR",
	ARRAY_EXPR:               "ARRAY_EXPR",
	INTERPOLATED_STRING_EXPR: "INTERPOLATED_STRING_EXPR",
	NAMED_TYPE:               "NAMED_TYPE",
	ARRAY_TYPE:               "ARRAY_TYPE",
	FUNCTION_TYPE:            "FUNCTION_TYPE",
	UNIT_TYPE:                "UNIT_TYPE",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// Program is the root of a parsed compilation unit.
type Program struct {
	Span  token.Span
	Stmts []Stmt
}

// Ident is a name in a declaration position.
type Ident struct {
	Span token.Span
	Name string
}

// Param is a function parameter with an optional type.
type Param struct {
	Span token.Span
	Name *Ident
	Type TypeExpr
}

func (p *Program) NodeSpan() token.Span { return p.Span }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodeSpan() token.Span { return i.Span }
func (*Ident) NodeType() NodeType     { return IDENT }

func (p *Param) NodeSpan() token.Span { return p.Span }
func (*Param) NodeType() NodeType     { return PARAM }
