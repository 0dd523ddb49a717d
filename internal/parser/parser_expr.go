package parser

import (
	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/token"
)

// binaryLevels lists binary operators from lowest to highest precedence.
// Every level is left-associative.
var binaryLevels = [][]token.BinaryOperator{
	{token.OR},
	{token.AND},
	{token.EQUAL_EQUAL, token.BANG_EQUAL},
	{token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL},
	{token.PLUS, token.MINUS},
	{token.STAR, token.SLASH, token.PERCENT},
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.exit()

	return p.parseAssignment()
}

// parseAssignment is right-associative: a = b = c assigns c to b first.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	start := p.peek()
	target, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.matchBinary(token.ASSIGN) {
		return target, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !isAssignable(target) {
		return nil, errors.NewInvalidAssignmentTarget(target.NodeSpan(), start.Start)
	}
	return &ast.AssignExpr{
		Span:   target.NodeSpan().Cover(value.NodeSpan()),
		Target: target,
		Value:  value,
	}, nil
}

func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.IdentExpr, *ast.CallExpr, *ast.IndexExpr, *ast.MemberExpr:
		return true
	}
	return false
}

func (p *Parser) parseBinary(level int) (ast.Expr, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.matchBinary(binaryLevels[level]...) {
		op := p.previous().BinaryOp
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Span:  left.NodeSpan().Cover(right.NodeSpan()),
			Left:  left,
			Op:    op,
			Right: right,
		}
	}
	return left, nil
}

// parseUnary accepts '!' and '-'. The scanner produces '-' as a binary
// operator; in prefix position it means negation.
func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.peek()
	var op token.UnaryOperator
	switch {
	case tok.IsUnary(token.NOT):
		op = token.NOT
	case tok.IsUnary(token.NEGATE), tok.IsBinary(token.MINUS):
		op = token.NEGATE
	default:
		return p.parsePostfix()
	}

	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.exit()

	p.advance()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Span: tok.Span.Cover(x.NodeSpan()), Op: op, X: x}, nil
}

// parsePostfix folds calls, index and member accesses left to right, so
// a.b(c)[d] is Index(Call(Member(a, b), c), d).
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			args, closing, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Span: expr.NodeSpan().Cover(closing.Span), Callee: expr, Args: args}

		case p.match(token.LEFT_BRACKET):
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			closing, err := p.consume(token.RIGHT_BRACKET, "']'")
			if err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Span: expr.NodeSpan().Cover(closing.Span), Target: expr, Index: index}

		case p.match(token.PERIOD):
			member, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{Span: expr.NodeSpan().Cover(member.Span), Target: expr, Member: member}

		default:
			return expr, nil
		}
	}
}

// parseArguments parses a call's arguments after the opening '('.
// Exceeding MaxArguments is reported once and parsing continues.
func (p *Parser) parseArguments() ([]ast.Expr, token.Token, error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) == p.opts.MaxArguments {
				tok := p.peek()
				p.report(errors.NewTooManyArguments(p.opts.MaxArguments, tok.Span, tok.Start))
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, token.Token{}, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	closing, err := p.consume(token.RIGHT_PAREN, "')'")
	if err != nil {
		return nil, token.Token{}, err
	}
	return args, closing, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.INT, token.HEX, token.BINARY:
		p.advance()
		return &ast.LiteralExpr{Span: tok.Span, Kind: ast.INT_LITERAL, Int: tok.Int}, nil

	case token.FLOAT:
		p.advance()
		return &ast.LiteralExpr{Span: tok.Span, Kind: ast.FLOAT_LITERAL, Float: tok.Float}, nil

	case token.STRING:
		p.advance()
		return &ast.LiteralExpr{Span: tok.Span, Kind: ast.STRING_LITERAL, Str: tok.Str}, nil

	case token.INTERPOLATED_STRING:
		p.advance()
		return p.parseInterpolated(tok)

	case token.IDENTIFIER:
		p.advance()
		return &ast.IdentExpr{Span: tok.Span, Name: tok.Lexeme}, nil

	case token.KEYWORD:
		if tok.Keyword == token.TRUE || tok.Keyword == token.FALSE {
			p.advance()
			return &ast.LiteralExpr{Span: tok.Span, Kind: ast.BOOL_LITERAL, Bool: tok.Keyword == token.TRUE}, nil
		}

	case token.LEFT_PAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(token.RIGHT_PAREN, "')'")
		if err != nil {
			return nil, err
		}
		return &ast.GroupExpr{Span: tok.Span.Cover(closing.Span), X: inner}, nil

	case token.LEFT_BRACKET:
		p.advance()
		return p.parseArray(tok)

	case token.EOF:
		return nil, errors.NewParseUnexpectedEOF("expression", tok.Span, tok.Start)
	}

	return nil, errors.NewExpectedExpression(tok.Describe(), tok.Span, tok.Start)
}

// parseArray parses the elements of an array literal after '['.
func (p *Parser) parseArray(open token.Token) (ast.Expr, error) {
	var elems []ast.Expr
	if !p.check(token.RIGHT_BRACKET) {
		for {
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	closing, err := p.consume(token.RIGHT_BRACKET, "']'")
	if err != nil {
		return nil, err
	}
	return &ast.ArrayExpr{Span: open.Span.Cover(closing.Span), Elems: elems}, nil
}
