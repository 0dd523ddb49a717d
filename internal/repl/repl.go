// Package repl is an interactive loop that lexes and parses what is typed
// and prints the resulting tree, tokens or diagnostics.
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/tliron/commonlog"

	"carbide/internal/errors"
	"carbide/internal/parser"
	"carbide/internal/report"
)

const (
	PromptMain = ">> "
	PromptCont = ".. "

	historyFile = ".carbide_history"
	sourceName  = "<repl>"
)

const helpText = `Commands:
  :help          show this help
  :ast           print the parsed program (default)
  :tokens        print the token stream
  :load <file>   parse a file and print the result
  :quit          leave the REPL
Input continues on the next line while a string, comment or statement is
still open.
`

var log = commonlog.GetLogger("carbide.repl")

// LineReader supplies input lines. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type Mode int

const (
	ModeAST Mode = iota
	ModeTokens
)

type Options struct {
	Parser   parser.Options
	Renderer report.Renderer
}

type REPL struct {
	in     LineReader
	out    io.Writer
	opts   parser.Options
	render report.Renderer
	mode   Mode
}

func New(in LineReader, out io.Writer, opts Options) *REPL {
	render := opts.Renderer
	if render == nil {
		render = &report.TextRenderer{}
	}
	return &REPL{in: in, out: out, opts: opts.Parser, render: render}
}

// Run reads and evaluates input until end of input or :quit.
func (r *REPL) Run() error {
	for {
		src, ok, err := r.read()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if r.command(trimmed) {
				return nil
			}
		default:
			r.Eval(src)
		}
		r.in.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// read collects lines until the buffer parses or fails for a reason more
// input cannot fix. ok is false at end of input.
func (r *REPL) read() (src string, ok bool, err error) {
	var b strings.Builder
	for {
		prompt := PromptMain
		if b.Len() > 0 {
			prompt = PromptCont
		}

		line, err := r.in.Prompt(prompt)
		switch {
		case stderrors.Is(err, io.EOF):
			return "", false, nil
		case stderrors.Is(err, liner.ErrPromptAborted):
			b.Reset()
			continue
		case err != nil:
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true, nil
		}
		if !NeedsMore(parser.ParseSourceWithOptions(sourceName, src, r.opts)) {
			return src, true, nil
		}
		log.Debugf("input incomplete after %d bytes, continuing", len(src))
	}
}

// NeedsMore reports whether every problem in res is an unexpected end of
// input, so that appending more text could still make it valid.
func NeedsMore(res *parser.ParseResult) bool {
	diags := res.Diagnostics()
	if len(diags) == 0 {
		return false
	}
	for _, d := range diags {
		switch d.Kind {
		case errors.LexUnexpectedEOF, errors.UnclosedString, errors.UnclosedComment, errors.ParseUnexpectedEOF:
		default:
			return false
		}
	}
	return true
}

// Eval parses src and prints the result in the current mode, or the
// diagnostics if there are any.
func (r *REPL) Eval(src string) {
	res := parser.ParseSourceWithOptions(sourceName, src, r.opts)
	r.print(res)
}

func (r *REPL) print(res *parser.ParseResult) {
	if res.HasErrors() {
		diags := res.Diagnostics()
		log.Debugf("%s: %d diagnostics", res.Name, len(diags))
		if err := r.render.Render(r.out, report.NewFile(res.Name, res.Source), diags); err != nil {
			log.Errorf("rendering diagnostics: %s", err.Error())
		}
		return
	}

	if r.mode == ModeTokens {
		for _, tok := range res.Tokens {
			fmt.Fprintln(r.out, tok)
		}
		return
	}
	if len(res.Program.Stmts) > 0 {
		fmt.Fprintln(r.out, res.Program)
	}
}

// command runs a ':' command and reports whether the loop should stop.
func (r *REPL) command(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Fprint(r.out, helpText)
	case ":quit", ":exit":
		return true
	case ":ast":
		r.mode = ModeAST
	case ":tokens":
		r.mode = ModeTokens
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(r.out, "usage: :load <file>")
			return false
		}
		res, err := parser.ParseFile(fields[1], r.opts)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		r.print(res)
	default:
		fmt.Fprintf(r.out, "unknown command %s, type :help for help\n", fields[0])
	}
	return false
}

// RunTerminal runs the REPL on the terminal with line editing and a
// history file in the user's home directory.
func RunTerminal(out io.Writer, opts Options) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Warningf("reading history: %s", err.Error())
			}
			f.Close()
		}
	}

	err := New(ln, out, opts).Run()

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			if _, err := ln.WriteHistory(f); err != nil {
				log.Warningf("writing history: %s", err.Error())
			}
			f.Close()
		}
	}
	return err
}
