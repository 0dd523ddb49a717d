package grammar

// Expression grammar, one type per precedence level from loosest to
// tightest. Every binary level is left-associative; assignment is right-
// associative through the recursive Value.

type Expression struct {
	Assignment *Assignment `@@`
}

type Assignment struct {
	Target *Or         `@@`
	Value  *Assignment `( "=" @@ )?`
}

type Or struct {
	Left *And      `@@`
	Rest []*OrTail `@@*`
}

type OrTail struct {
	Op    string `@"||"`
	Right *And   `@@`
}

type And struct {
	Left *Equality  `@@`
	Rest []*AndTail `@@*`
}

type AndTail struct {
	Op    string    `@"&&"`
	Right *Equality `@@`
}

type Equality struct {
	Left *Comparison     `@@`
	Rest []*EqualityTail `@@*`
}

type EqualityTail struct {
	Op    string      `@("==" | "!=")`
	Right *Comparison `@@`
}

type Comparison struct {
	Left *Term             `@@`
	Rest []*ComparisonTail `@@*`
}

type ComparisonTail struct {
	Op    string `@("<=" | ">=" | "<" | ">")`
	Right *Term  `@@`
}

type Term struct {
	Left *Factor     `@@`
	Rest []*TermTail `@@*`
}

type TermTail struct {
	Op    string  `@("+" | "-")`
	Right *Factor `@@`
}

type Factor struct {
	Left *Unary        `@@`
	Rest []*FactorTail `@@*`
}

type FactorTail struct {
	Op    string `@("*" | "/" | "%")`
	Right *Unary `@@`
}

type Unary struct {
	Op      string   `(  @("!" | "-")`
	X       *Unary   `   @@ )`
	Postfix *Postfix `| @@`
}

type Postfix struct {
	Primary  *Primary  `@@`
	Suffixes []*Suffix `@@*`
}

type Suffix struct {
	Call   *Call   `  @@`
	Index  *Index  `| @@`
	Member *Member `| @@`
}

type Call struct {
	Args []*Expression `"(" ( @@ ( "," @@ )* )? ")"`
}

type Index struct {
	Index *Expression `"[" @@ "]"`
}

type Member struct {
	Name string `"." @Ident`
}

type Primary struct {
	Float  *float64    `  @Float`
	Int    *string     `| @(Hex | Binary | Int)`
	Bool   *string     `| @("true" | "false")`
	Str    *string     `| @String`
	Ident  *string     `| @Ident`
	Group  *Expression `| "(" @@ ")"`
	Array  *Array      `| @@`
}

type Array struct {
	Elems []*Expression `"[" ( @@ ( "," @@ )* )? "]"`
}
