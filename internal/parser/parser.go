// Package parser builds an ast.Program from lexed tokens.
//
// Expressions are parsed by precedence climbing, statements by a single
// token of lookahead. Errors are collected as diagnostics; after each error
// the parser skips to the next statement boundary and continues, so one
// malformed statement yields roughly one diagnostic.
package parser

import (
	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/token"
)

// Result is the output of a recovering parse.
type Result struct {
	Program     *ast.Program
	Diagnostics errors.Diagnostics
}

func (r Result) HasErrors() bool { return len(r.Diagnostics) > 0 }

// Parser holds the state of one parse. A Parser is not reusable.
type Parser struct {
	tokens *token.Stream
	opts   Options
	diags  errors.Diagnostics

	depth      int // current nesting, bounded by opts.MaxDepth
	funcDepth  int // enclosing function declarations
	loopDepth  int // enclosing loops within the current function
	blockDepth int // enclosing blocks, used by synchronize
}

func New(tokens []token.Token, opts Options) *Parser {
	return &Parser{tokens: token.NewStream(tokens), opts: opts.withDefaults()}
}

// Parse parses tokens with the default options.
func Parse(tokens []token.Token) Result {
	return ParseWithOptions(tokens, DefaultOptions())
}

func ParseWithOptions(tokens []token.Token, opts Options) Result {
	return New(tokens, opts).ParseProgram()
}

// ParseStrict fails with the first diagnostic instead of returning a
// partial program.
func ParseStrict(tokens []token.Token) (*ast.Program, error) {
	res := Parse(tokens)
	if err := res.Diagnostics.Err(); err != nil {
		return nil, err
	}
	return res.Program, nil
}

// ParseExpression parses tokens as exactly one expression. Every token must
// be consumed.
func ParseExpression(tokens []token.Token) (ast.Expr, error) {
	return New(tokens, DefaultOptions()).parseStandalone()
}

// ParseProgram parses statements until the end of input.
func (p *Parser) ParseProgram() Result {
	prog := &ast.Program{}
	for !p.tokens.AtEnd() {
		if stmt := p.declaration(); stmt != nil {
			prog.Stmts = append(prog.Stmts, stmt)
		}
	}
	if n := len(prog.Stmts); n > 0 {
		prog.Span = prog.Stmts[0].NodeSpan().Cover(prog.Stmts[n-1].NodeSpan())
	}
	return Result{Program: prog, Diagnostics: p.diags}
}

// declaration parses one statement, recovering from any error in it.
func (p *Parser) declaration() ast.Stmt {
	start := p.tokens.Pos()
	stmt, err := p.parseStatement()
	if err != nil {
		p.record(err)
		p.synchronize(start)
		return nil
	}
	return stmt
}

// parseStandalone parses a single expression that must span all tokens.
// Non-fatal diagnostics also fail it.
func (p *Parser) parseStandalone() (ast.Expr, error) {
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.tokens.AtEnd() {
		return nil, p.unexpected("end of expression")
	}
	if err := p.diags.Err(); err != nil {
		return nil, err
	}
	return x, nil
}
