package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"carbide/internal/lsp"
	"carbide/internal/parser"
)

const uri = "file:///work/main.cb"

// recorder captures the diagnostics a handler publishes.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{Notify: func(method string, params any) {
		if method == protocol.ServerTextDocumentPublishDiagnostics {
			r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
		}
	}}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published)
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.CarbideHandler, ctx *glsp.Context, text string) {
	t.Helper()
	require.NoError(t, h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "carbide", Version: 1, Text: text},
	}))
}

func newHandler() *lsp.CarbideHandler {
	return lsp.NewCarbideHandler(parser.DefaultOptions(), "test")
}

func TestInitialize(t *testing.T) {
	res, err := newHandler().Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	result, ok := res.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, lsp.Name, result.ServerInfo.Name)
	assert.Equal(t, "test", *result.ServerInfo.Version)
	assert.Equal(t, true, result.Capabilities.DocumentSymbolProvider)

	tokens, ok := result.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestPublishDiagnostics(t *testing.T) {
	rec := &recorder{}
	h := newHandler()
	open(t, h, rec.context(), "let x = @ 5;")

	params := rec.last(t)
	assert.Equal(t, uri, params.URI)
	require.Len(t, params.Diagnostics, 1)

	d := params.Diagnostics[0]
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 8},
		End:   protocol.Position{Line: 0, Character: 9},
	}, d.Range)
	assert.Equal(t, "E0003", d.Code.Value)
	assert.Equal(t, "carbide-lexer", *d.Source)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Contains(t, d.Message, "Unexpected character `@`")
}

func TestRelatedInformation(t *testing.T) {
	rec := &recorder{}
	open(t, newHandler(), rec.context(), `let s = "abc`)

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 2)
	assert.Equal(t, "carbide-lexer", *diags[0].Source)
	assert.Equal(t, "carbide-parser", *diags[1].Source)

	require.Len(t, diags[0].RelatedInformation, 1)
	related := diags[0].RelatedInformation[0]
	assert.Equal(t, uri, related.Location.URI)
	assert.Equal(t, protocol.Position{Line: 0, Character: 12}, related.Location.Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 13}, related.Location.Range.End)
	assert.Equal(t, "Add closing \" here", related.Message)
}

func TestDidChange(t *testing.T) {
	rec := &recorder{}
	h := newHandler()
	ctx := rec.context()
	open(t, h, ctx, "let x = ;")
	require.Len(t, rec.last(t).Diagnostics, 1)

	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri}, Version: 2},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "let x = 5;"}},
	}))
	assert.NotNil(t, rec.last(t).Diagnostics)
	assert.Empty(t, rec.last(t).Diagnostics)

	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri}, Version: 3},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 8},
				End:   protocol.Position{Line: 0, Character: 9},
			},
			Text: "@",
		}},
	}))
	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 2)
	assert.Equal(t, "E0003", diags[0].Code.Value)
	assert.Equal(t, "E1011", diags[1].Code.Value)
}

func TestDidClose(t *testing.T) {
	rec := &recorder{}
	h := newHandler()
	ctx := rec.context()
	open(t, h, ctx, "let x = ;")

	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	assert.Empty(t, rec.last(t).Diagnostics)

	_, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.Error(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := newHandler()
	open(t, h, &glsp.Context{}, "fn add(a: int, b: int) -> int {\n  return a + b;\n}\nlet total = add(1, 2);")

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 18)

	assertToken(t, &decoded[0], 1, 1, 2, "keyword", nil)
	assertToken(t, &decoded[1], 1, 4, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 8, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 11, 3, "type", nil)
	assertToken(t, &decoded[4], 1, 16, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[5], 1, 19, 3, "type", nil)
	assertToken(t, &decoded[6], 1, 24, 2, "operator", nil)
	assertToken(t, &decoded[7], 1, 27, 3, "type", nil)
	assertToken(t, &decoded[8], 2, 3, 6, "keyword", nil)
	assertToken(t, &decoded[9], 2, 10, 1, "variable", nil)
	assertToken(t, &decoded[10], 2, 12, 1, "operator", nil)
	assertToken(t, &decoded[11], 2, 14, 1, "variable", nil)
	assertToken(t, &decoded[12], 4, 1, 3, "keyword", nil)
	assertToken(t, &decoded[13], 4, 5, 5, "variable", []string{"declaration"})
	assertToken(t, &decoded[14], 4, 11, 1, "operator", nil)
	assertToken(t, &decoded[15], 4, 13, 3, "function", nil)
	assertToken(t, &decoded[16], 4, 17, 1, "number", nil)
	assertToken(t, &decoded[17], 4, 20, 1, "number", nil)
}

func TestDocumentSymbols(t *testing.T) {
	h := newHandler()
	open(t, h, &glsp.Context{}, "fn add(a: int) -> int { let y = a; return y; }\nlet z = 1;")

	res, err := h.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	symbols, ok := res.([]protocol.DocumentSymbol)
	require.True(t, ok)
	require.Len(t, symbols, 2)

	fn := symbols[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, protocol.SymbolKindFunction, fn.Kind)
	assert.Equal(t, "fn add(a: int) -> int", *fn.Detail)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 3},
		End:   protocol.Position{Line: 0, Character: 6},
	}, fn.SelectionRange)
	require.Len(t, fn.Children, 2)
	assert.Equal(t, "a", fn.Children[0].Name)
	assert.Equal(t, "y", fn.Children[1].Name)

	assert.Equal(t, "z", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindVariable, symbols[1].Kind)
	assert.Equal(t, uint32(1), symbols[1].Range.Start.Line)
}

func TestProtocolWiring(t *testing.T) {
	p := newHandler().Protocol()
	assert.NotNil(t, p.Initialize)
	assert.NotNil(t, p.TextDocumentDidOpen)
	assert.NotNil(t, p.TextDocumentSemanticTokensFull)
	assert.NotNil(t, p.TextDocumentDocumentSymbol)
	assert.NotNil(t, p.SetTrace)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

// decodeSemanticTokens reverses the relative encoding; lines and characters
// come back 1-based to match editor display.
func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)
	for i := 0; i < len(raw); i += 5 {
		deltaLine, deltaStart := raw[i], raw[i+1]
		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
			Modifiers: modifiers,
		})
	}
	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, line, char, length uint32, typ string, modifiers []string) {
	t.Helper()
	require.Equal(t, line, token.Line, "line mismatch in token %d", token.Index)
	require.Equal(t, char, token.Char, "char mismatch in token %d", token.Index)
	require.Equal(t, length, token.Length, "length mismatch in token %d", token.Index)
	require.Equal(t, typ, token.Type, "type mismatch in token %d", token.Index)
	require.ElementsMatch(t, modifiers, token.Modifiers, "modifiers mismatch in token %d", token.Index)
}
