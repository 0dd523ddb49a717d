package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"carbide/internal/ast"
	"carbide/internal/report"
)

// TextDocumentDocumentSymbol lists functions, with their parameters and
// local declarations as children, and top-level let declarations.
func (h *CarbideHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return documentSymbols(doc.file, doc.result.Program.Stmts), nil
}

func documentSymbols(f *report.File, stmts []ast.Stmt) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionDecl:
			detail := signature(s)
			sym := protocol.DocumentSymbol{
				Name:           s.Name.Name,
				Detail:         &detail,
				Kind:           protocol.SymbolKindFunction,
				Range:          spanRange(f, s.Span),
				SelectionRange: spanRange(f, s.Name.Span),
			}
			for _, p := range s.Params {
				sym.Children = append(sym.Children, protocol.DocumentSymbol{
					Name:           p.Name.Name,
					Kind:           protocol.SymbolKindVariable,
					Range:          spanRange(f, p.Span),
					SelectionRange: spanRange(f, p.Name.Span),
				})
			}
			sym.Children = append(sym.Children, documentSymbols(f, s.Body.Stmts)...)
			symbols = append(symbols, sym)

		case *ast.LetStmt:
			symbols = append(symbols, protocol.DocumentSymbol{
				Name:           s.Name.Name,
				Kind:           protocol.SymbolKindVariable,
				Range:          spanRange(f, s.Span),
				SelectionRange: spanRange(f, s.Name.Span),
			})
		}
	}
	return symbols
}

// signature renders a function header without its body.
func signature(fn *ast.FunctionDecl) string {
	sig := "fn " + fn.Name.Name + "("
	for i, p := range fn.Params {
		if i > 0 {
			sig += ", "
		}
		sig += p.String()
	}
	sig += ")"
	if fn.Return != nil {
		sig += " -> " + fn.Return.String()
	}
	return sig
}
