package token

// BinaryOperator is an infix operator. ASSIGN is included because the
// scanner treats '=' like any other operator spelling.
type BinaryOperator int

const (
	PLUS BinaryOperator = iota + 1
	MINUS
	STAR
	SLASH
	PERCENT
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR
	ASSIGN
)

var binarySpellings = [...]string{
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	EQUAL_EQUAL:   "==",
	BANG_EQUAL:    "!=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	AND:           "&&",
	OR:            "||",
	ASSIGN:        "=",
}

// UnaryOperator is a prefix operator.
type UnaryOperator int

const (
	NOT UnaryOperator = iota + 1
	NEGATE
)

var unarySpellings = [...]string{
	NOT:    "!",
	NEGATE: "-",
}

var (
	binaryOperators = invert(binarySpellings[:], func(i int) BinaryOperator { return BinaryOperator(i) })
	unaryOperators  = invert(unarySpellings[:], func(i int) UnaryOperator { return UnaryOperator(i) })
)

func invert[T any](spellings []string, conv func(int) T) map[string]T {
	m := make(map[string]T, len(spellings))
	for i, lit := range spellings {
		if lit != "" {
			m[lit] = conv(i)
		}
	}
	return m
}

// LookupBinary returns the binary operator spelled exactly as lit.
func LookupBinary(lit string) (BinaryOperator, bool) {
	op, ok := binaryOperators[lit]
	return op, ok
}

// LookupUnary returns the unary operator spelled exactly as lit.
func LookupUnary(lit string) (UnaryOperator, bool) {
	op, ok := unaryOperators[lit]
	return op, ok
}

// BinaryStartsWith reports whether any binary operator begins with c.
func BinaryStartsWith(c byte) bool { return anyStartsWith(binarySpellings[:], c) }

// UnaryStartsWith reports whether any unary operator begins with c.
func UnaryStartsWith(c byte) bool { return anyStartsWith(unarySpellings[:], c) }

// IsOperatorStart reports whether c can begin an operator of either table.
func IsOperatorStart(c byte) bool {
	return BinaryStartsWith(c) || UnaryStartsWith(c)
}

func anyStartsWith(spellings []string, c byte) bool {
	for _, lit := range spellings {
		if lit != "" && lit[0] == c {
			return true
		}
	}
	return false
}

func (op BinaryOperator) String() string {
	if op > 0 && int(op) < len(binarySpellings) {
		return binarySpellings[op]
	}
	return "binop(?)"
}

func (op UnaryOperator) String() string {
	if op > 0 && int(op) < len(unarySpellings) {
		return unarySpellings[op]
	}
	return "unop(?)"
}

// BinaryOperators returns every binary operator spelling, longest first.
func BinaryOperators() []string {
	out := make([]string, 0, len(binaryOperators))
	for _, lit := range binarySpellings {
		if lit != "" {
			out = append(out, lit)
		}
	}
	// stable by length so two-character spellings win in alternations
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// punctuation maps single-character punctuation to its token kind.
var punctuation = map[byte]Kind{
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'[': LEFT_BRACKET,
	']': RIGHT_BRACKET,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	';': SEMICOLON,
	':': COLON,
	'.': PERIOD,
	',': COMMA,
	'~': TILDE,
}

// LookupPunct returns the punctuation kind for c.
func LookupPunct(c byte) (Kind, bool) {
	k, ok := punctuation[c]
	return k, ok
}

// IsPunctStart reports whether c is single-character punctuation.
func IsPunctStart(c byte) bool {
	_, ok := punctuation[c]
	return ok
}
