package parser

import (
	"fmt"
	"os"

	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/lexer"
	"carbide/internal/token"
)

// ParseResult holds everything produced for one compilation unit.
type ParseResult struct {
	Name             string
	Source           string
	Tokens           []token.Token
	Program          *ast.Program
	LexDiagnostics   errors.Diagnostics
	ParseDiagnostics errors.Diagnostics
}

// Diagnostics returns lexer diagnostics followed by parser diagnostics.
func (r *ParseResult) Diagnostics() errors.Diagnostics {
	out := make(errors.Diagnostics, 0, len(r.LexDiagnostics)+len(r.ParseDiagnostics))
	out = append(out, r.LexDiagnostics...)
	return append(out, r.ParseDiagnostics...)
}

func (r *ParseResult) HasErrors() bool {
	return len(r.LexDiagnostics) > 0 || len(r.ParseDiagnostics) > 0
}

// ParseSource lexes and parses src. The parser runs even when the lexer
// reported problems; the two diagnostic lists are kept apart.
func ParseSource(src string) (*ast.Program, errors.Diagnostics, errors.Diagnostics) {
	res := ParseSourceWithOptions("", src, DefaultOptions())
	return res.Program, res.ParseDiagnostics, res.LexDiagnostics
}

func ParseSourceWithOptions(name, src string, opts Options) *ParseResult {
	lexed := lexer.Lex(src)

	p := New(lexed.Tokens, opts)
	p.tokens = token.NewStreamAt(lexed.Tokens, token.Start.Advance(src))
	parsed := p.ParseProgram()

	return &ParseResult{
		Name:             name,
		Source:           src,
		Tokens:           lexed.Tokens,
		Program:          parsed.Program,
		LexDiagnostics:   lexed.Diagnostics,
		ParseDiagnostics: parsed.Diagnostics,
	}
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts Options) (*ParseResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSourceWithOptions(path, string(source), opts), nil
}
