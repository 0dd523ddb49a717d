package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"carbide/internal/ast"
	"carbide/internal/token"
)

// SemanticTokenTypes is the legend advertised to clients; token type
// indexes refer to it.
var SemanticTokenTypes = []string{
	"type",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
}

const declaration = 1 << 0

// SemanticToken is one entry before delta encoding. Line and StartChar are
// 0-based.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

type role struct {
	typ       string
	modifiers int
}

func (h *CarbideHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	tokens := collectSemanticTokens(doc.result.Tokens, doc.result.Program)
	return &protocol.SemanticTokens{Data: encode(tokens)}, nil
}

// collectSemanticTokens classifies each lexed token, using the tree to tell
// functions, parameters, types and fields apart from plain variables.
func collectSemanticTokens(tokens []token.Token, prog *ast.Program) []SemanticToken {
	roles := identifierRoles(prog)

	var out []SemanticToken
	for _, tok := range tokens {
		// tokens may not span lines in the LSP encoding
		if tok.Start.Line != tok.End.Line {
			continue
		}

		var r role
		switch tok.Kind {
		case token.KEYWORD:
			r.typ = "keyword"
		case token.INT, token.FLOAT, token.HEX, token.BINARY:
			r.typ = "number"
		case token.STRING, token.INTERPOLATED_STRING:
			r.typ = "string"
		case token.BINARY_OP, token.UNARY_OP, token.THIN_ARROW, token.FAT_ARROW:
			r.typ = "operator"
		case token.IDENTIFIER:
			r = role{typ: "variable"}
			if known, ok := roles[tok.Span.Start]; ok {
				r = known
			}
		default:
			continue
		}

		out = append(out, SemanticToken{
			Line:           uint32(tok.Start.Line - 1),
			StartChar:      uint32(tok.Start.Column - 1),
			Length:         uint32(tok.End.Column - tok.Start.Column),
			TokenType:      indexOf(r.typ, SemanticTokenTypes),
			TokenModifiers: r.modifiers,
		})
	}
	return out
}

// identifierRoles maps the start offset of identifiers to their role.
func identifierRoles(prog *ast.Program) map[int]role {
	roles := make(map[int]role)
	if prog == nil {
		return roles
	}

	ast.Inspect(prog, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FunctionDecl:
			roles[v.Name.Span.Start] = role{"function", declaration}
		case *ast.Param:
			roles[v.Name.Span.Start] = role{"parameter", declaration}
		case *ast.LetStmt:
			roles[v.Name.Span.Start] = role{"variable", declaration}
		case *ast.NamedType:
			roles[v.Span.Start] = role{typ: "type"}
		case *ast.MemberExpr:
			roles[v.Member.Span.Start] = role{typ: "property"}
		case *ast.CallExpr:
			if id, ok := v.Callee.(*ast.IdentExpr); ok {
				roles[id.Span.Start] = role{typ: "function"}
			}
		}
		return true
	})
	return roles
}

// encode applies the LSP relative encoding: five integers per token with
// line and start relative to the previous token.
func encode(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32
	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.StartChar
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), uint32(t.TokenModifiers))
		prevLine, prevStart = t.Line, t.StartChar
	}
	return data
}

// indexOf returns the index of target in list, or 0 if it is missing.
func indexOf(target string, list []string) int {
	for i, s := range list {
		if s == target {
			return i
		}
	}
	return 0
}
