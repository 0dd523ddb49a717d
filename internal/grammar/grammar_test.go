package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbide/internal/grammar"
	"carbide/internal/lexer"
	"carbide/internal/parser"
	"carbide/internal/token"
)

func referenceType(k token.Kind) string {
	switch k {
	case token.IDENTIFIER, token.KEYWORD:
		return "Ident"
	case token.INT:
		return "Int"
	case token.FLOAT:
		return "Float"
	case token.HEX:
		return "Hex"
	case token.BINARY:
		return "Binary"
	case token.STRING, token.INTERPOLATED_STRING:
		return "String"
	case token.BINARY_OP, token.UNARY_OP:
		return "Operator"
	case token.THIN_ARROW, token.FAT_ARROW:
		return "Arrow"
	}
	return "Punct"
}

// The hand-written lexer and the reference lexer agree on every valid input
// without nested comments.
func TestTokenizeMatchesLexer(t *testing.T) {
	inputs := []string{
		"let x = 0xFF + 0b101 * 3.14;",
		"fn add(a: int, b: int) -> int { return a + b; }",
		`s = "hi \"there\"";`,
		`greeting = "Hello {name}!";`,
		"a.b[0](c) => d ~ e",
		"x <= y && !z || w != 1.",
		"x - -y >= 2 % 3",
		"// leading comment\nlet y = 1; /* block ** comment */ y",
		"while i < 10 { i = i + 1; }",
		"1.2.3",
	}

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			lexed := lexer.Lex(src)
			require.Empty(t, lexed.Diagnostics)

			want := make([]grammar.Lexeme, len(lexed.Tokens))
			for i, tok := range lexed.Tokens {
				want[i] = grammar.Lexeme{Type: referenceType(tok.Kind), Value: tok.Lexeme, Offset: tok.Span.Start}
			}

			got, err := grammar.Tokenize(src)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("token mismatch (-lexer +reference):\n%s", diff)
			}
		})
	}
}

func TestTokenizeRejects(t *testing.T) {
	_, err := grammar.Tokenize("let x = @;")
	assert.Error(t, err)
}

// The reference grammar and the hand-written parser build the same tree
// for valid expressions.
func TestParseExpressionMatchesParser(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3",
		"1 - 2 - 3",
		"a || b && c == d < e + f * g",
		"-x * !y",
		"--x",
		"a = b = c + 1",
		"f(x, y)[0].z",
		"a.b.c(d)(e)",
		`[1, 2.5, true, "s", []]`,
		"(a + b) * c",
		"0xFF - 0b11 % 2",
		"x = !(y != z)",
		"f()",
	}

	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			lexed := lexer.Lex(src)
			require.Empty(t, lexed.Diagnostics)

			want, err := parser.ParseExpression(lexed.Tokens)
			require.NoError(t, err)

			got, err := grammar.ParseExpression(src)
			require.NoError(t, err)
			assert.Equal(t, want.String(), got.String())
		})
	}
}

func TestParseExpressionRejects(t *testing.T) {
	for _, src := range []string{"1 +", "(a", "f(,)", "a."} {
		_, err := grammar.ParseExpression(src)
		assert.Error(t, err, src)

		_, err = parser.ParseExpression(lexer.Lex(src).Tokens)
		assert.Error(t, err, src)
	}
}
