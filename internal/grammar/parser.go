package grammar

import (
	"github.com/alecthomas/participle/v2"
)

var expressionParser = participle.MustBuild[Expression](
	participle.Lexer(Lexer),
	participle.Elide(trivia...),
	participle.UseLookahead(2),
)

// ParseExpression parses src as a single expression with the reference
// grammar. Errors are participle.Error values carrying the position.
func ParseExpression(src string) (*Expression, error) {
	return expressionParser.ParseString("", src)
}
