package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carbide/internal/token"
)

func TestInspectVisitsEveryNode(t *testing.T) {
	prog := &Program{Stmts: []Stmt{
		&FunctionDecl{
			Name:   &Ident{Name: "f"},
			Params: []*Param{{Name: &Ident{Name: "a"}, Type: &ArrayType{Elem: &NamedType{Name: "int"}}}},
			Body: &BlockStmt{Stmts: []Stmt{
				&ReturnStmt{Value: &CallExpr{Callee: ident("g"), Args: []Expr{ident("a")}}},
			}},
		},
		&LetStmt{Name: &Ident{Name: "x"}},
	}}

	var seen []NodeType
	Inspect(prog, func(n Node) bool {
		seen = append(seen, n.NodeType())
		return true
	})

	assert.Equal(t, []NodeType{
		PROGRAM,
		FUNCTION_DECL, IDENT, PARAM, IDENT, ARRAY_TYPE, NAMED_TYPE,
		BLOCK_STMT, RETURN_STMT, CALL_EXPR, IDENT_EXPR, IDENT_EXPR,
		LET_STMT, IDENT,
	}, seen)
}

func TestInspectPrunes(t *testing.T) {
	prog := &Program{Stmts: []Stmt{
		&FunctionDecl{Name: &Ident{Name: "f"}, Body: &BlockStmt{Stmts: []Stmt{&BreakStmt{}}}},
		&ExprStmt{X: &BinaryExpr{Left: ident("a"), Op: token.PLUS, Right: ident("b")}},
	}}

	var names []string
	Inspect(prog, func(n Node) bool {
		switch n := n.(type) {
		case *FunctionDecl:
			names = append(names, n.Name.Name)
			return false
		case *IdentExpr:
			names = append(names, n.Name)
		}
		return true
	})

	assert.Equal(t, []string{"f", "a", "b"}, names)
}

func TestInspectInterpolation(t *testing.T) {
	s := &InterpolatedStringExpr{Parts: []StringPart{{Text: "x = "}, {Expr: ident("x")}}}
	count := 0
	Inspect(s, func(n Node) bool {
		count++
		return true
	})
	assert.Equal(t, 2, count)
}
