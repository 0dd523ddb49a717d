package ast

import "carbide/internal/token"

type LetStmt struct {
	Span token.Span
	Name *Ident
	Type TypeExpr // optional
	Init Expr     // optional
}

type FunctionDecl struct {
	Span   token.Span
	Name   *Ident
	Params []*Param
	Return TypeExpr // optional
	Body   *BlockStmt
}

// ReturnStmt with a nil Value is a bare `return;`.
type ReturnStmt struct {
	Span  token.Span
	Value Expr
}

// IfStmt.Else is nil, a *BlockStmt, or an *IfStmt for `else if`.
type IfStmt struct {
	Span token.Span
	Cond Expr
	Then *BlockStmt
	Else Stmt
}

type WhileStmt struct {
	Span token.Span
	Cond Expr
	Body *BlockStmt
}

// ForStmt is `for init; cond; post { ... }` with every clause optional.
type ForStmt struct {
	Span token.Span
	Init Stmt
	Cond Expr
	Post Expr
	Body *BlockStmt
}

type BlockStmt struct {
	Span  token.Span
	Stmts []Stmt
}

type ExprStmt struct {
	Span token.Span
	X    Expr
}

type BreakStmt struct {
	Span token.Span
}

type ContinueStmt struct {
	Span token.Span
}

func (*LetStmt) isStmt()      {}
func (*FunctionDecl) isStmt() {}
func (*ReturnStmt) isStmt()   {}
func (*IfStmt) isStmt()       {}
func (*WhileStmt) isStmt()    {}
func (*ForStmt) isStmt()      {}
func (*BlockStmt) isStmt()    {}
func (*ExprStmt) isStmt()     {}
func (*BreakStmt) isStmt()    {}
func (*ContinueStmt) isStmt() {}

func (s *LetStmt) NodeSpan() token.Span { return s.Span }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (f *FunctionDecl) NodeSpan() token.Span { return f.Span }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (r *ReturnStmt) NodeSpan() token.Span { return r.Span }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (s *IfStmt) NodeSpan() token.Span { return s.Span }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (s *WhileStmt) NodeSpan() token.Span { return s.Span }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (s *ForStmt) NodeSpan() token.Span { return s.Span }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (b *BlockStmt) NodeSpan() token.Span { return b.Span }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (e *ExprStmt) NodeSpan() token.Span { return e.Span }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (b *BreakStmt) NodeSpan() token.Span { return b.Span }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (c *ContinueStmt) NodeSpan() token.Span { return c.Span }
func (*ContinueStmt) NodeType() NodeType     { return CONTINUE_STMT }
