package ast

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node. Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}

	case *Param:
		Inspect(n.Name, f)
		inspectType(n.Type, f)

	case *LetStmt:
		Inspect(n.Name, f)
		inspectType(n.Type, f)
		inspectExpr(n.Init, f)

	case *FunctionDecl:
		Inspect(n.Name, f)
		for _, p := range n.Params {
			Inspect(p, f)
		}
		inspectType(n.Return, f)
		inspectBlock(n.Body, f)

	case *ReturnStmt:
		inspectExpr(n.Value, f)

	case *IfStmt:
		inspectExpr(n.Cond, f)
		inspectBlock(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}

	case *WhileStmt:
		inspectExpr(n.Cond, f)
		inspectBlock(n.Body, f)

	case *ForStmt:
		if n.Init != nil {
			Inspect(n.Init, f)
		}
		inspectExpr(n.Cond, f)
		inspectExpr(n.Post, f)
		inspectBlock(n.Body, f)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}

	case *ExprStmt:
		inspectExpr(n.X, f)

	case *BinaryExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)

	case *UnaryExpr:
		inspectExpr(n.X, f)

	case *AssignExpr:
		inspectExpr(n.Target, f)
		inspectExpr(n.Value, f)

	case *CallExpr:
		inspectExpr(n.Callee, f)
		for _, a := range n.Args {
			inspectExpr(a, f)
		}

	case *IndexExpr:
		inspectExpr(n.Target, f)
		inspectExpr(n.Index, f)

	case *MemberExpr:
		inspectExpr(n.Target, f)
		Inspect(n.Member, f)

	case *GroupExpr:
		inspectExpr(n.X, f)

	case *ArrayExpr:
		for _, e := range n.Elems {
			inspectExpr(e, f)
		}

	case *InterpolatedStringExpr:
		for _, p := range n.Parts {
			inspectExpr(p.Expr, f)
		}

	case *ArrayType:
		inspectType(n.Elem, f)

	case *FunctionType:
		for _, p := range n.Params {
			inspectType(p, f)
		}
		inspectType(n.Return, f)
	}
}

// The helpers below drop nil interface values before recursing so that
// optional children do not reach f.

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectType(t TypeExpr, f func(Node) bool) {
	if t != nil {
		Inspect(t, f)
	}
}

func inspectBlock(b *BlockStmt, f func(Node) bool) {
	if b != nil {
		Inspect(b, f)
	}
}
