package parser

import (
	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()

	if tok.Is(token.KEYWORD) {
		switch tok.Keyword {
		case token.LET:
			return p.parseLet()
		case token.FN:
			return p.parseFunction()
		case token.RETURN:
			return p.parseReturn()
		case token.IF:
			return p.parseIf()
		case token.WHILE:
			return p.parseWhile()
		case token.FOR:
			return p.parseFor()
		case token.BREAK, token.CONTINUE:
			return p.parseLoopControl()
		}
	}

	if tok.Is(token.LEFT_BRACE) {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return block, nil
	}

	return p.parseExprStmt()
}

// parseLet parses `let name [: Type] [= expr];`.
func (p *Parser) parseLet() (ast.Stmt, error) {
	let := p.advance()

	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}

	var typ ast.TypeExpr
	if p.match(token.COLON) {
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	var init ast.Expr
	if p.matchBinary(token.ASSIGN) {
		if init, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	semi, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{Span: let.Span.Cover(semi.Span), Name: name, Type: typ, Init: init}, nil
}

// parseReturn accepts both `return expr;` and a bare `return;`.
func (p *Parser) parseReturn() (ast.Stmt, error) {
	ret := p.advance()
	if p.funcDepth == 0 {
		p.report(errors.NewReturnOutsideFunction(ret.Span, ret.Start))
	}

	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		var err error
		if value, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	semi, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Span: ret.Span.Cover(semi.Span), Value: value}, nil
}

// parseIf parses `if cond { } [else if ... | else { }]`.
func (p *Parser) parseIf() (ast.Stmt, error) {
	ifTok := p.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Span: ifTok.Span.Cover(then.Span), Cond: cond, Then: then}
	if !p.matchKeyword(token.ELSE) {
		return stmt, nil
	}

	if p.peek().IsKeyword(token.IF) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.exit()
		stmt.Else, err = p.parseIf()
	} else {
		var block *ast.BlockStmt
		block, err = p.parseBlock()
		if block != nil {
			stmt.Else = block
		}
	}
	if err != nil {
		return nil, err
	}
	stmt.Span = stmt.Span.Cover(stmt.Else.NodeSpan())
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	while := p.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Span: while.Span.Cover(body.Span), Cond: cond, Body: body}, nil
}

// parseFor parses `for init; cond; post { }`. Each clause may be empty; the
// init clause is a let declaration or an expression.
func (p *Parser) parseFor() (ast.Stmt, error) {
	forTok := p.advance()
	stmt := &ast.ForStmt{}

	switch {
	case p.match(token.SEMICOLON):
	case p.peek().IsKeyword(token.LET):
		init, err := p.parseLet()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	default:
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(token.SEMICOLON, "';'")
		if err != nil {
			return nil, err
		}
		stmt.Init = &ast.ExprStmt{Span: x.NodeSpan().Cover(semi.Span), X: x}
	}

	var err error
	if !p.check(token.SEMICOLON) {
		if stmt.Cond, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(token.SEMICOLON, "';'"); err != nil {
		return nil, err
	}
	if !p.check(token.LEFT_BRACE) {
		if stmt.Post, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if stmt.Body, err = p.parseLoopBody(); err != nil {
		return nil, err
	}
	stmt.Span = forTok.Span.Cover(stmt.Body.Span)
	return stmt, nil
}

func (p *Parser) parseLoopBody() (*ast.BlockStmt, error) {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.parseBlock()
}

// parseLoopControl parses `break;` and `continue;`. Use outside a loop is
// reported and the statement is still produced.
func (p *Parser) parseLoopControl() (ast.Stmt, error) {
	tok := p.advance()
	if p.loopDepth == 0 {
		if tok.Keyword == token.BREAK {
			p.report(errors.NewBreakOutsideLoop(tok.Span, tok.Start))
		} else {
			p.report(errors.NewContinueOutsideLoop(tok.Span, tok.Start))
		}
	}

	semi, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	span := tok.Span.Cover(semi.Span)
	if tok.Keyword == token.BREAK {
		return &ast.BreakStmt{Span: span}, nil
	}
	return &ast.ContinueStmt{Span: span}, nil
}

// parseBlock parses `{ stmt* }`. Errors inside the block are recovered per
// statement; only a missing brace fails the block itself.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	open, err := p.consume(token.LEFT_BRACE, "'{'")
	if err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.exit()

	p.blockDepth++
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.blockDepth--

	closing, err := p.consume(token.RIGHT_BRACE, "'}'")
	if err != nil {
		return nil, err
	}
	return &ast.BlockStmt{Span: open.Span.Cover(closing.Span), Stmts: stmts}, nil
}

// parseExprStmt requires a trailing ';' unless the statement is the last one
// in its block or in the input.
func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	span := x.NodeSpan()
	switch {
	case p.match(token.SEMICOLON):
		span = span.Cover(p.previous().Span)
	case p.check(token.RIGHT_BRACE) || p.isAtEnd():
	default:
		return nil, p.unexpected("';'")
	}
	return &ast.ExprStmt{Span: span, X: x}, nil
}
