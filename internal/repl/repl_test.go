package repl

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbide/internal/parser"
)

type input struct {
	line string
	err  error
}

// scripted replays a fixed sequence of lines, then reports end of input.
type scripted struct {
	inputs  []input
	prompts []string
	history []string
}

func lines(ls ...string) *scripted {
	s := &scripted{}
	for _, l := range ls {
		s.inputs = append(s.inputs, input{line: l})
	}
	return s
}

func (s *scripted) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in.line, in.err
}

func (s *scripted) AppendHistory(item string) { s.history = append(s.history, item) }

func run(t *testing.T, in *scripted) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(in, &out, Options{}).Run())
	return out.String()
}

func TestEvalStatement(t *testing.T) {
	in := lines("let x = 1 + 2;")
	out := run(t, in)

	assert.Equal(t, "let x = (1 + 2);\n\n", out)
	assert.Equal(t, []string{PromptMain, PromptMain}, in.prompts)
	assert.Equal(t, []string{"let x = 1 + 2;"}, in.history)
}

func TestContinuation(t *testing.T) {
	in := lines("fn f() {", "return 1;", "}")
	out := run(t, in)

	assert.Equal(t, "fn f() {\n  return 1;\n}\n\n", out)
	assert.Equal(t, []string{PromptMain, PromptCont, PromptCont, PromptMain}, in.prompts)
	assert.Equal(t, []string{"fn f() { return 1; }"}, in.history)
}

func TestContinuationInString(t *testing.T) {
	in := lines(`let s = "a`, `b";`)
	out := run(t, in)

	assert.Contains(t, out, `let s = "a\nb";`)
	assert.Equal(t, []string{PromptMain, PromptCont, PromptMain}, in.prompts)
}

func TestErrorsAreReported(t *testing.T) {
	in := lines("let x = @;")
	out := run(t, in)

	assert.Contains(t, out, "error[E0003]")
	assert.Contains(t, out, "<repl>:1:9")
	assert.Contains(t, out, "error[E1011]")
	assert.Equal(t, []string{PromptMain, PromptMain}, in.prompts)
}

func TestTokensMode(t *testing.T) {
	out := run(t, lines(":tokens", "x + 1", ":ast", "x + 1"))

	assert.Contains(t, out, "(x)@1:1")
	assert.Contains(t, out, `("1")@1:5`)
	assert.Contains(t, out, "(x + 1);\n")
}

func TestCommands(t *testing.T) {
	out := run(t, lines(":help", ":nope"))
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "unknown command :nope")

	in := lines(":quit", "x;")
	out = run(t, in)
	assert.Empty(t, out)
	assert.Len(t, in.inputs, 1)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.cb")
	require.NoError(t, os.WriteFile(path, []byte("fn f() {}\nlet y = ;"), 0o644))

	out := run(t, lines(":load "+path))
	assert.Contains(t, out, "error[E1011]")
	assert.Contains(t, out, path+":2:9")

	require.NoError(t, os.WriteFile(path, []byte("fn f() {}"), 0o644))
	out = run(t, lines(":load "+path))
	assert.Contains(t, out, "fn f() {}")

	out = run(t, lines(":load", ":load "+filepath.Join(t.TempDir(), "missing.cb")))
	assert.Contains(t, out, "usage: :load <file>")
	assert.Contains(t, out, "failed to read file")
}

func TestAbortDiscardsPendingInput(t *testing.T) {
	in := &scripted{inputs: []input{
		{line: "fn f() {"},
		{err: liner.ErrPromptAborted},
		{line: "x;"},
	}}
	out := run(t, in)

	assert.Equal(t, "x;\n\n", out)
	assert.Equal(t, []string{PromptMain, PromptCont, PromptMain, PromptMain}, in.prompts)
}

func TestReadError(t *testing.T) {
	boom := stderrors.New("terminal gone")
	in := &scripted{inputs: []input{{err: boom}}}

	err := New(in, io.Discard, Options{}).Run()
	assert.ErrorIs(t, err, boom)
}

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		src  string
		more bool
	}{
		{"let x = 1", true},
		{`"abc`, true},
		{"/* open", true},
		{"fn f() {", true},
		{"f(1,", true},
		{"let x = 1;", false},
		{"let x = @", false},
		{"x y", false},
		{"", false},
	}
	for _, tt := range tests {
		res := parser.ParseSourceWithOptions("", tt.src, parser.DefaultOptions())
		assert.Equal(t, tt.more, NeedsMore(res), tt.src)
	}
}
