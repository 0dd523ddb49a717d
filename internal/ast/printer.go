package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// The printer renders a canonical form of the tree. Binary, unary and
// assignment expressions are fully parenthesized so that the shape of the
// tree is visible in the output.

func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Stmts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.String())
	}
	return b.String()
}

func (i *Ident) String() string { return i.Name }

func (p *Param) String() string {
	if p.Type != nil {
		return p.Name.String() + ": " + p.Type.String()
	}
	return p.Name.String()
}

func (s *LetStmt) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(s.Name.String())
	if s.Type != nil {
		b.WriteString(": ")
		b.WriteString(s.Type.String())
	}
	if s.Init != nil {
		b.WriteString(" = ")
		b.WriteString(s.Init.String())
	}
	b.WriteString(";")
	return b.String()
}

func (f *FunctionDecl) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("fn %s(", f.Name))
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if f.Return != nil {
		b.WriteString(" -> ")
		b.WriteString(f.Return.String())
	}
	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

func (s *IfStmt) String() string {
	out := "if " + s.Cond.String() + " " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

func (s *WhileStmt) String() string {
	return "while " + s.Cond.String() + " " + s.Body.String()
}

func (s *ForStmt) String() string {
	var b strings.Builder
	b.WriteString("for ")
	if s.Init != nil {
		b.WriteString(s.Init.String())
	} else {
		b.WriteString(";")
	}
	if s.Cond != nil {
		b.WriteString(" ")
		b.WriteString(s.Cond.String())
	}
	b.WriteString(";")
	if s.Post != nil {
		b.WriteString(" ")
		b.WriteString(s.Post.String())
	}
	b.WriteString(" ")
	b.WriteString(s.Body.String())
	return b.String()
}

func (bs *BlockStmt) String() string {
	if bs == nil {
		return "{}"
	}
	if len(bs.Stmts) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range bs.Stmts {
		b.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (e *ExprStmt) String() string { return e.X.String() + ";" }

func (*BreakStmt) String() string { return "break;" }

func (*ContinueStmt) String() string { return "continue;" }

func (l *LiteralExpr) String() string {
	switch l.Kind {
	case INT_LITERAL:
		return strconv.FormatInt(l.Int, 10)
	case FLOAT_LITERAL:
		s := strconv.FormatFloat(l.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case STRING_LITERAL:
		return strconv.Quote(l.Str)
	case BOOL_LITERAL:
		return strconv.FormatBool(l.Bool)
	}
	return "<literal>"
}

func (i *IdentExpr) String() string { return i.Name }

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.X)
}

func (a *AssignExpr) String() string {
	return fmt.Sprintf("(%s = %s)", a.Target, a.Value)
}

func (c *CallExpr) String() string {
	return c.Callee.String() + "(" + joinExprs(c.Args) + ")"
}

func (i *IndexExpr) String() string {
	return i.Target.String() + "[" + i.Index.String() + "]"
}

func (m *MemberExpr) String() string {
	return m.Target.String() + "." + m.Member.String()
}

func (g *GroupExpr) String() string { return "(" + g.X.String() + ")" }

func (a *ArrayExpr) String() string { return "[" + joinExprs(a.Elems) + "]" }

func (s *InterpolatedStringExpr) String() string {
	var b strings.Builder
	b.WriteString(`"`)
	for _, p := range s.Parts {
		if p.IsText() {
			quoted := strconv.Quote(p.Text)
			b.WriteString(quoted[1 : len(quoted)-1])
		} else {
			b.WriteString("{" + p.Expr.String() + "}")
		}
	}
	b.WriteString(`"`)
	return b.String()
}

func (t *NamedType) String() string { return t.Name }

func (t *ArrayType) String() string { return "[" + t.Elem.String() + "]" }

func (t *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("fn(")
	for i, p := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if t.Return != nil {
		b.WriteString(" -> " + t.Return.String())
	}
	return b.String()
}

func (*UnitType) String() string { return "()" }

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
