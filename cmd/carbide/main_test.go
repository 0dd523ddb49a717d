package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbide/internal/errors"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "carbide "+version)
	assert.Contains(t, stdout, "Go Version:")
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "ok.cb", "let x = 1 + 2;\nfn f() {}")

	stdout, stderr, err := run(t, "", "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = (1 + 2);\nfn f() {}\n", stdout)
	assert.Contains(t, stderr, "Successfully parsed "+path)
}

func TestParseCommandQuiet(t *testing.T) {
	path := writeFile(t, "ok.cb", "let x = 1;")

	stdout, _, err := run(t, "", "parse", "-q", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestParseCommandDiagnostics(t *testing.T) {
	path := writeFile(t, "bad.cb", "let x = @ 5;")

	stdout, stderr, err := run(t, "", "parse", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error[E0003]: Unexpected character `@`")
	assert.Contains(t, stderr, path+":1:9")
	assert.Contains(t, stderr, "could not parse "+path+" due to 1 previous error")
}

func TestParseCommandJSON(t *testing.T) {
	path := writeFile(t, "bad.cb", "let = 1;")

	stdout, stderr, err := run(t, "", "--format", "json", "parse", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Empty(t, stderr)

	var doc struct {
		File        string `json:"file"`
		Diagnostics []struct {
			Code  string `json:"code"`
			Stage string `json:"stage"`
			Line  int    `json:"line"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, path, doc.File)
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, errors.ErrorExpectedIdentifier.String(), doc.Diagnostics[0].Code)
	assert.Equal(t, "parser", doc.Diagnostics[0].Stage)
	assert.Equal(t, 1, doc.Diagnostics[0].Line)
}

func TestParseStdin(t *testing.T) {
	stdout, _, err := run(t, "x = -y;", "parse", "-")
	require.NoError(t, err)
	assert.Equal(t, "(x = (-y));\n", stdout)
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing.cb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLexCommand(t *testing.T) {
	path := writeFile(t, "ok.cb", "let x")

	stdout, _, err := run(t, "", "lex", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "KEYWORD(let)")
	assert.Contains(t, stdout, "IDENTIFIER(x)")
	assert.Contains(t, stdout, "EOF")
}

func TestLexCommandDiagnostics(t *testing.T) {
	path := writeFile(t, "bad.cb", `"open`)

	_, stderr, err := run(t, "", "lex", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, "error[E0004]")
}

func TestExplainCommand(t *testing.T) {
	stdout, _, err := run(t, "", "explain", "e3")
	require.NoError(t, err)
	assert.Equal(t, "E0003 (Lexer error)\n\nCharacter cannot start any token\n", stdout)

	_, _, err = run(t, "", "explain", "E9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error code E9999")

	_, _, err = run(t, "", "explain", "nope")
	assert.Error(t, err)
}

func TestExplainList(t *testing.T) {
	stdout, _, err := run(t, "", "explain")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, len(errors.Codes()))
	assert.True(t, strings.HasPrefix(lines[0], "E0000"))
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "carbide.toml", "[report]\nformat = \"json\"\n")
	path := writeFile(t, "ok.cb", "let x = 1;")

	stdout, _, err := run(t, "", "--config", cfg, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"diagnostics": []`)
}

func TestConfigFlagOverride(t *testing.T) {
	cfg := writeFile(t, "carbide.toml", "[report]\nformat = \"json\"\n")
	path := writeFile(t, "ok.cb", "let x = 1;")

	stdout, _, err := run(t, "", "--config", cfg, "--format", "text", "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", stdout)
}

func TestConfigParserLimits(t *testing.T) {
	cfg := writeFile(t, "carbide.yaml", "parser:\n  max_parameters: 1\n")
	path := writeFile(t, "f.cb", "fn f(a, b) {}")

	_, stderr, err := run(t, "", "--config", cfg, "parse", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, stderr, errors.ErrorTooManyParameters.String())
}

func TestInvalidFlags(t *testing.T) {
	path := writeFile(t, "ok.cb", "1;")

	_, _, err := run(t, "", "--format", "xml", "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.format")

	_, _, err = run(t, "", "--color", "sometimes", "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.color")
}
