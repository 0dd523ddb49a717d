package parser

import (
	"carbide/internal/ast"
	"carbide/internal/errors"
	"carbide/internal/lexer"
	"carbide/internal/token"
)

// parseInterpolated turns the parts of an INTERPOLATED_STRING token into an
// expression. Each code fragment is lexed and parsed on its own, positioned
// where it sits in the enclosing source.
func (p *Parser) parseInterpolated(tok token.Token) (ast.Expr, error) {
	parts := make([]ast.StringPart, 0, len(tok.Parts))
	for _, part := range tok.Parts {
		if part.Kind == token.TEXT {
			parts = append(parts, ast.StringPart{Text: part.Value})
			continue
		}

		expr, err := p.parseFragment(part)
		if err != nil {
			return nil, fragmentError(tok, err)
		}
		parts = append(parts, ast.StringPart{Expr: expr})
	}
	return &ast.InterpolatedStringExpr{Span: tok.Span, Parts: parts}, nil
}

func (p *Parser) parseFragment(part token.StringPart) (ast.Expr, error) {
	toks, err := lexer.LexStrictAt(part.Value, part.Start)
	if err != nil {
		return nil, err
	}

	sub := &Parser{
		tokens: token.NewStreamAt(toks, part.Start.Advance(part.Value)),
		opts:   p.opts,
		depth:  p.depth,
	}
	return sub.parseStandalone()
}

// fragmentError reports a failed fragment as ExpectedExpression at the
// location of the nested failure, pointing back at the enclosing string.
func fragmentError(str token.Token, err error) error {
	nested, ok := errors.AsDiagnostic(err)
	if !ok {
		return errors.NewExpectedExpression("invalid interpolation", str.Span, str.Start)
	}

	return errors.New(errors.ExpectedExpression, nested.Span, nested.Location).
		Message("Expected expression in string interpolation at [%s]", nested.Location).
		WithLabel(nested.Span, "invalid interpolated expression").
		WithSecondary(str.Span, "in this string").
		WithNote(nested.Message).
		WithFound(nested.Found).
		Build()
}
