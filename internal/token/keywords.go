package token

// Keyword is a reserved word of the language.
type Keyword int

const (
	LET Keyword = iota + 1
	FN
	RETURN
	IF
	ELSE
	WHILE
	FOR
	BREAK
	CONTINUE
	TRUE
	FALSE
)

var keywordSpellings = [...]string{
	LET:      "let",
	FN:       "fn",
	RETURN:   "return",
	IF:       "if",
	ELSE:     "else",
	WHILE:    "while",
	FOR:      "for",
	BREAK:    "break",
	CONTINUE: "continue",
	TRUE:     "true",
	FALSE:    "false",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordSpellings))
	for kw, lit := range keywordSpellings {
		if lit != "" {
			m[lit] = Keyword(kw)
		}
	}
	return m
}()

// LookupKeyword returns the keyword spelled exactly as ident.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}

// Keywords returns every keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, 0, len(keywordSpellings)-1)
	for kw := LET; kw <= FALSE; kw++ {
		out = append(out, kw)
	}
	return out
}

func (k Keyword) String() string {
	if k > 0 && int(k) < len(keywordSpellings) {
		return keywordSpellings[k]
	}
	return "keyword(?)"
}
