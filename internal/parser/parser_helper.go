package parser

import (
	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/token"
)

func (p *Parser) advance() token.Token { return p.tokens.Advance() }

func (p *Parser) peek() token.Token { return p.tokens.Peek() }

func (p *Parser) previous() token.Token { return p.tokens.Previous() }

func (p *Parser) isAtEnd() bool { return p.tokens.AtEnd() }

func (p *Parser) check(kind token.Kind) bool { return p.peek().Is(kind) }

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchKeyword(kw token.Keyword) bool {
	if p.peek().IsKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchBinary(ops ...token.BinaryOperator) bool {
	for _, op := range ops {
		if p.peek().IsBinary(op) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the current token if it has the given kind. expected
// describes the token for the diagnostic otherwise.
func (p *Parser) consume(kind token.Kind, expected string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(expected)
}

func (p *Parser) consumeIdent() (*ast.Ident, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.IDENTIFIER:
		p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Lexeme}, nil
	case token.EOF:
		return nil, errors.NewParseUnexpectedEOF("identifier", tok.Span, tok.Start)
	}
	return nil, errors.NewExpectedIdentifier(tok.Describe(), tok.Span, tok.Start)
}

// unexpected builds the diagnostic for a missing token at the current position.
func (p *Parser) unexpected(expected string) error {
	tok := p.peek()
	if tok.Is(token.EOF) {
		return errors.NewParseUnexpectedEOF(expected, tok.Span, tok.Start)
	}
	return errors.NewUnexpectedToken(expected, tok.Describe(), tok.Span, tok.Start)
}

// report records a diagnostic that does not abort the current statement.
func (p *Parser) report(d errors.Diagnostic) {
	p.diags = append(p.diags, d)
}

func (p *Parser) record(err error) {
	if d, ok := errors.AsDiagnostic(err); ok {
		p.report(d)
		return
	}
	tok := p.peek()
	p.report(errors.New(errors.UnexpectedToken, tok.Span, tok.Start).Message("%s", err.Error()).Build())
}

// enter bounds recursion. Every successful enter must be paired with exit.
func (p *Parser) enter() error {
	if p.depth >= p.opts.MaxDepth {
		tok := p.peek()
		return errors.NewRecursionLimitExceeded(p.opts.MaxDepth, tok.Span, tok.Start)
	}
	p.depth++
	return nil
}

func (p *Parser) exit() { p.depth-- }

// synchronize discards tokens after an error until a statement boundary:
// just past a ';', or before 'fn', 'let' or 'return'. Inside a block it also
// stops before '}' so the block can close. At least one token is consumed
// since the failed statement began at start.
func (p *Parser) synchronize(start int) {
	if p.tokens.Pos() == start {
		p.advance()
	}

	for !p.isAtEnd() {
		if p.previous().Is(token.SEMICOLON) {
			return
		}

		tok := p.peek()
		if tok.IsKeyword(token.FN) || tok.IsKeyword(token.LET) || tok.IsKeyword(token.RETURN) {
			return
		}
		if p.blockDepth > 0 && tok.Is(token.RIGHT_BRACE) {
			return
		}

		p.advance()
	}
}
