package ast

import "carbide/internal/token"

type NamedType struct {
	Span token.Span
	Name string
}

// ArrayType is written [T].
type ArrayType struct {
	Span token.Span
	Elem TypeExpr
}

// FunctionType is written fn(T, U) -> R; Return is nil when omitted.
type FunctionType struct {
	Span   token.Span
	Params []TypeExpr
	Return TypeExpr
}

// UnitType is written ().
type UnitType struct {
	Span token.Span
}

func (*NamedType) isType()    {}
func (*ArrayType) isType()    {}
func (*FunctionType) isType() {}
func (*UnitType) isType()     {}

func (t *NamedType) NodeSpan() token.Span { return t.Span }
func (*NamedType) NodeType() NodeType     { return NAMED_TYPE }

func (t *ArrayType) NodeSpan() token.Span { return t.Span }
func (*ArrayType) NodeType() NodeType     { return ARRAY_TYPE }

func (t *FunctionType) NodeSpan() token.Span { return t.Span }
func (*FunctionType) NodeType() NodeType     { return FUNCTION_TYPE }

func (t *UnitType) NodeSpan() token.Span { return t.Span }
func (*UnitType) NodeType() NodeType     { return UNIT_TYPE }
