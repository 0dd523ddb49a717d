// Package lsp serves carbide diagnostics, semantic tokens and document
// symbols over the Language Server Protocol.
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"carbide/internal/parser"
	"carbide/internal/report"
)

const Name = "carbide"

var log = commonlog.GetLogger("carbide.lsp")

// document is the latest state of one open file.
type document struct {
	text   string
	file   *report.File
	result *parser.ParseResult
}

// CarbideHandler keeps open documents parsed and answers requests about
// them. Documents are synchronized in full on every change.
type CarbideHandler struct {
	mu      sync.RWMutex
	docs    map[protocol.DocumentUri]*document
	opts    parser.Options
	version string
}

func NewCarbideHandler(opts parser.Options, version string) *CarbideHandler {
	return &CarbideHandler{
		docs:    make(map[protocol.DocumentUri]*document),
		opts:    opts,
		version: version,
	}
}

// Protocol wires the handler's methods into a glsp protocol handler.
func (h *CarbideHandler) Protocol() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     h.TextDocumentDocumentSymbol,
	}
}

func (h *CarbideHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	syncKind := protocol.TextDocumentSyncKindFull
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    &syncKind,
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: true,
			},
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &h.version,
		},
	}, nil
}

func (h *CarbideHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (h *CarbideHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *CarbideHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *CarbideHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)
	h.publish(ctx, params.TextDocument.URI, h.update(params.TextDocument.URI, params.TextDocument.Text))
	return nil
}

func (h *CarbideHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	text := ""
	if doc, ok := h.docs[uri]; ok {
		text = doc.text
	}
	h.mu.RUnlock()

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			start, end := offsetAt(text, c.Range.Start), offsetAt(text, c.Range.End)
			text = text[:start] + c.Text + text[end:]
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.publish(ctx, uri, h.update(uri, text))
	return nil
}

func (h *CarbideHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	// clear what the editor still shows for the file
	h.publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// update reparses text as the new content of uri and returns its diagnostics.
func (h *CarbideHandler) update(uri protocol.DocumentUri, text string) []protocol.Diagnostic {
	name, err := uriToPath(uri)
	if err != nil {
		log.Warningf("%s", err.Error())
		name = uri
	}

	res := parser.ParseSourceWithOptions(name, text, h.opts)
	doc := &document{text: text, file: report.NewFile(name, text), result: res}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	return ConvertDiagnostics(doc.file, uri, res.Diagnostics())
}

func (h *CarbideHandler) document(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, ok := h.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

func (h *CarbideHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// uriToPath converts a file URI to a platform-local path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q in %s", u.Scheme, rawURI)
	}

	path := u.Path
	// file:///C:/x arrives as /C:/x on Windows
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

// offsetAt converts a 0-based line and character to a byte offset in text,
// counting characters as runes and clamping to the line end.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}

	var col uint32
	for i, r := range text[offset:] {
		if col == pos.Character || r == '\n' {
			return offset + i
		}
		col++
	}
	return len(text)
}

func ptrBool(b bool) *bool {
	return &b
}
