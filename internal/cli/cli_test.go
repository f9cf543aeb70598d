package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-lang/calder/pkg/parser"
	"github.com/calder-lang/calder/pkg/token"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.cal")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestParseCommandCanonical(t *testing.T) {
	path := writeSource(t, "let x = 0")

	stdout, _, err := runCommand(t, "parse", path, "--output", "canonical")
	require.NoError(t, err)
	assert.Contains(t, stdout, `[Init("x", IntegerLit(0))]`)
}

func TestParseCommandTree(t *testing.T) {
	path := writeSource(t, "(arg) { arg }")

	stdout, _, err := runCommand(t, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Function(")
}

func TestParseCommandReportsErrors(t *testing.T) {
	path := writeSource(t, "{ let x = 0")

	_, stderr, err := runCommand(t, "parse", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "unexpected end of input")
}

func TestParseCommandMaxDepthFlag(t *testing.T) {
	path := writeSource(t, "((((0))))")

	_, _, err := runCommand(t, "parse", path, "--max-depth", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting depth exceeded")
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, `let greeting = "hi"`)

	stdout, _, err := runCommand(t, "tokens", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "IDENT")
	assert.Contains(t, stdout, "greeting")
	assert.Contains(t, stdout, "STRING")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "calder")
}

func TestRenderErrorExcerpt(t *testing.T) {
	src := "let x = $"
	_, err := parser.Parse(src)
	require.Error(t, err)

	rendered := renderError(err, src)
	assert.Contains(t, rendered, "error:")
	assert.Contains(t, rendered, "1 | let x = $")
	assert.Contains(t, rendered, "^")
}

func TestErrorPosition(t *testing.T) {
	_, err := parser.Parse("{ 1 2")
	require.Error(t, err)

	pos, ok := errorPosition(err)
	require.True(t, ok)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, pos)
}
