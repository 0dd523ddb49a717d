// Package grammar is a declarative description of carbide's tokens and
// expressions built with participle. It is a reference for the hand-written
// lexer and parser, not a replacement: it has no recovery, no nested block
// comments and no interpolation.
package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer matches rules in order, so longer forms come first: hex and binary
// before decimal integers, floats before integers, arrows before '-' and '='.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"BlockComment", `/\*([^*]|\*+[^*/])*\*+/`, nil},

		{"String", `"(\\.|[^"\\])*"`, nil},
		{"Hex", `0x[0-9a-fA-F]+`, nil},
		{"Binary", `0b[01]+`, nil},
		{"Float", `[0-9]+\.[0-9]*`, nil},
		{"Int", `[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		{"Arrow", `->|=>`, nil},
		{"Operator", `\|\||&&|==|!=|<=|>=|[-+*/%<>=!]`, nil},
		{"Punct", `[(){}\[\];:.,~]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

// trivia is elided from both Tokenize and the expression parser.
var trivia = []string{"Whitespace", "Comment", "BlockComment"}

// Lexeme is one significant token as the reference lexer sees it.
type Lexeme struct {
	Type   string
	Value  string
	Offset int
}

// Tokenize runs the reference lexer over src and drops trivia.
func Tokenize(src string) ([]Lexeme, error) {
	lex, err := Lexer.LexString("", src)
	if err != nil {
		return nil, err
	}

	names := lexer.SymbolsByRune(Lexer)
	skip := make(map[string]bool, len(trivia))
	for _, name := range trivia {
		skip[name] = true
	}

	var out []Lexeme
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, fmt.Errorf("reference lexer: %w", err)
		}
		if tok.EOF() {
			return out, nil
		}
		if name := names[tok.Type]; !skip[name] {
			out = append(out, Lexeme{Type: name, Value: tok.Value, Offset: tok.Pos.Offset})
		}
	}
}
