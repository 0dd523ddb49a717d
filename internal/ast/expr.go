package ast

import "carbide/internal/token"

type LiteralKind int

const (
	INT_LITERAL LiteralKind = iota
	FLOAT_LITERAL
	STRING_LITERAL
	BOOL_LITERAL
)

// LiteralExpr holds a constant. Integer literals of every radix share
// INT_LITERAL; only the field matching Kind is meaningful.
type LiteralExpr struct {
	Span  token.Span
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
}

type IdentExpr struct {
	Span token.Span
	Name string
}

type BinaryExpr struct {
	Span  token.Span
	Left  Expr
	Op    token.BinaryOperator
	Right Expr
}

type UnaryExpr struct {
	Span token.Span
	Op   token.UnaryOperator
	X    Expr
}

// AssignExpr targets are restricted by the parser to identifiers, calls,
// index and member expressions.
type AssignExpr struct {
	Span   token.Span
	Target Expr
	Value  Expr
}

type CallExpr struct {
	Span   token.Span
	Callee Expr
	Args   []Expr
}

type IndexExpr struct {
	Span   token.Span
	Target Expr
	Index  Expr
}

type MemberExpr struct {
	Span   token.Span
	Target Expr
	Member *Ident
}

// GroupExpr is a parenthesized expression.
type GroupExpr struct {
	Span token.Span
	X    Expr
}

type ArrayExpr struct {
	Span  token.Span
	Elems []Expr
}

// StringPart is either literal text (Expr == nil) or an embedded expression.
type StringPart struct {
	Text string
	Expr Expr
}

func (p StringPart) IsText() bool { return p.Expr == nil }

type InterpolatedStringExpr struct {
	Span  token.Span
	Parts []StringPart
}

func (*LiteralExpr) isExpr()            {}
func (*IdentExpr) isExpr()              {}
func (*BinaryExpr) isExpr()             {}
func (*UnaryExpr) isExpr()              {}
func (*AssignExpr) isExpr()             {}
func (*CallExpr) isExpr()               {}
func (*IndexExpr) isExpr()              {}
func (*MemberExpr) isExpr()             {}
func (*GroupExpr) isExpr()              {}
func (*ArrayExpr) isExpr()              {}
func (*InterpolatedStringExpr) isExpr() {}

func (l *LiteralExpr) NodeSpan() token.Span { return l.Span }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodeSpan() token.Span { return i.Span }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (b *BinaryExpr) NodeSpan() token.Span { return b.Span }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodeSpan() token.Span { return u.Span }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (a *AssignExpr) NodeSpan() token.Span { return a.Span }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (c *CallExpr) NodeSpan() token.Span { return c.Span }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (i *IndexExpr) NodeSpan() token.Span { return i.Span }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (m *MemberExpr) NodeSpan() token.Span { return m.Span }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (g *GroupExpr) NodeSpan() token.Span { return g.Span }
func (*GroupExpr) NodeType() NodeType     { return GROUP_EXPR }

func (a *ArrayExpr) NodeSpan() token.Span { return a.Span }
func (*ArrayExpr) NodeType() NodeType     { return ARRAY_EXPR }

func (s *InterpolatedStringExpr) NodeSpan() token.Span { return s.Span }
func (*InterpolatedStringExpr) NodeType() NodeType     { return INTERPOLATED_STRING_EXPR }
