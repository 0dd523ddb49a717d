package parser

import (
	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/token"
)

// parseFunction parses `fn name(params) [-> Type] { body }`.
func (p *Parser) parseFunction() (ast.Stmt, error) {
	fnTok := p.advance()

	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_PAREN, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}

	var ret ast.TypeExpr
	if p.match(token.THIN_ARROW) {
		if ret, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	if !p.check(token.LEFT_BRACE) {
		return nil, p.unexpected("function body")
	}

	// loops do not extend into nested functions
	savedLoops := p.loopDepth
	p.loopDepth = 0
	p.funcDepth++
	body, err := p.parseBlock()
	p.funcDepth--
	p.loopDepth = savedLoops
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Span:   fnTok.Span.Cover(body.Span),
		Name:   name,
		Params: params,
		Return: ret,
		Body:   body,
	}, nil
}

// parseFunctionParameters parses parameters after '(' up to and including
// ')'. Exceeding MaxParameters is reported once and parsing continues.
func (p *Parser) parseFunctionParameters() ([]*ast.Param, error) {
	var params []*ast.Param

	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) == p.opts.MaxParameters {
				tok := p.peek()
				p.report(errors.NewTooManyParameters(p.opts.MaxParameters, tok.Span, tok.Start))
			}

			name, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			param := &ast.Param{Span: name.Span, Name: name}
			if p.match(token.COLON) {
				if param.Type, err = p.parseType(); err != nil {
					return nil, err
				}
				param.Span = param.Span.Cover(param.Type.NodeSpan())
			}
			params = append(params, param)

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RIGHT_PAREN, "')'"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseType parses a type annotation: a name, [T], fn(T, ...) [-> R] or ().
func (p *Parser) parseType() (ast.TypeExpr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.exit()

	tok := p.peek()
	switch {
	case tok.Is(token.IDENTIFIER):
		p.advance()
		return &ast.NamedType{Span: tok.Span, Name: tok.Lexeme}, nil

	case tok.Is(token.LEFT_BRACKET):
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(token.RIGHT_BRACKET, "']'")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayType{Span: tok.Span.Cover(closing.Span), Elem: elem}, nil

	case tok.Is(token.LEFT_PAREN):
		p.advance()
		closing, err := p.consume(token.RIGHT_PAREN, "')'")
		if err != nil {
			return nil, err
		}
		return &ast.UnitType{Span: tok.Span.Cover(closing.Span)}, nil

	case tok.IsKeyword(token.FN):
		p.advance()
		return p.parseFunctionType(tok)

	case tok.Is(token.EOF):
		return nil, errors.NewParseUnexpectedEOF("type", tok.Span, tok.Start)
	}

	return nil, errors.NewUnexpectedToken("type", tok.Describe(), tok.Span, tok.Start)
}

func (p *Parser) parseFunctionType(fnTok token.Token) (ast.TypeExpr, error) {
	if _, err := p.consume(token.LEFT_PAREN, "'('"); err != nil {
		return nil, err
	}

	ft := &ast.FunctionType{}
	if !p.check(token.RIGHT_PAREN) {
		for {
			param, err := p.parseType()
			if err != nil {
				return nil, err
			}
			ft.Params = append(ft.Params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	closing, err := p.consume(token.RIGHT_PAREN, "')'")
	if err != nil {
		return nil, err
	}
	ft.Span = fnTok.Span.Cover(closing.Span)

	if p.match(token.THIN_ARROW) {
		if ft.Return, err = p.parseType(); err != nil {
			return nil, err
		}
		ft.Span = ft.Span.Cover(ft.Return.NodeSpan())
	}
	return ft, nil
}
