package grammar

import (
	"strconv"
	"strings"

	carbidelexer "carbide/internal/lexer"
)

// The String methods print the same canonical form as the ast package, so a
// reference parse can be compared with the hand-written parser's output.

func (e *Expression) String() string { return e.Assignment.String() }

func (a *Assignment) String() string {
	if a.Value == nil {
		return a.Target.String()
	}
	return "(" + a.Target.String() + " = " + a.Value.String() + ")"
}

// fold renders a left-associative chain.
func fold(left string, ops, rights []string) string {
	for i, op := range ops {
		left = "(" + left + " " + op + " " + rights[i] + ")"
	}
	return left
}

func (o *Or) String() string {
	ops, rights := make([]string, len(o.Rest)), make([]string, len(o.Rest))
	for i, t := range o.Rest {
		ops[i], rights[i] = t.Op, t.Right.String()
	}
	return fold(o.Left.String(), ops, rights)
}

func (a *And) String() string {
	ops, rights := make([]string, len(a.Rest)), make([]string, len(a.Rest))
	for i, t := range a.Rest {
		ops[i], rights[i] = t.Op, t.Right.String()
	}
	return fold(a.Left.String(), ops, rights)
}

func (e *Equality) String() string {
	ops, rights := make([]string, len(e.Rest)), make([]string, len(e.Rest))
	for i, t := range e.Rest {
		ops[i], rights[i] = t.Op, t.Right.String()
	}
	return fold(e.Left.String(), ops, rights)
}

func (c *Comparison) String() string {
	ops, rights := make([]string, len(c.Rest)), make([]string, len(c.Rest))
	for i, t := range c.Rest {
		ops[i], rights[i] = t.Op, t.Right.String()
	}
	return fold(c.Left.String(), ops, rights)
}

func (t *Term) String() string {
	ops, rights := make([]string, len(t.Rest)), make([]string, len(t.Rest))
	for i, r := range t.Rest {
		ops[i], rights[i] = r.Op, r.Right.String()
	}
	return fold(t.Left.String(), ops, rights)
}

func (f *Factor) String() string {
	ops, rights := make([]string, len(f.Rest)), make([]string, len(f.Rest))
	for i, t := range f.Rest {
		ops[i], rights[i] = t.Op, t.Right.String()
	}
	return fold(f.Left.String(), ops, rights)
}

func (u *Unary) String() string {
	if u.Postfix != nil {
		return u.Postfix.String()
	}
	return "(" + u.Op + u.X.String() + ")"
}

func (p *Postfix) String() string {
	out := p.Primary.String()
	for _, s := range p.Suffixes {
		switch {
		case s.Call != nil:
			out += "(" + join(s.Call.Args) + ")"
		case s.Index != nil:
			out += "[" + s.Index.Index.String() + "]"
		case s.Member != nil:
			out += "." + s.Member.Name
		}
	}
	return out
}

func (p *Primary) String() string {
	switch {
	case p.Float != nil:
		s := strconv.FormatFloat(*p.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	case p.Int != nil:
		v, err := strconv.ParseInt(*p.Int, 0, 64)
		if err != nil {
			return *p.Int
		}
		return strconv.FormatInt(v, 10)
	case p.Bool != nil:
		return *p.Bool
	case p.Str != nil:
		raw := *p.Str
		return strconv.Quote(carbidelexer.Unescape(raw[1 : len(raw)-1]))
	case p.Ident != nil:
		return *p.Ident
	case p.Group != nil:
		return "(" + p.Group.String() + ")"
	case p.Array != nil:
		return "[" + join(p.Array.Elems) + "]"
	}
	return "<empty>"
}

func join(exprs []*Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
