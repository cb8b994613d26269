package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const sample = `
- kind: BasicToken::INIT
- kind: LogToken::LOG
  line: 1
  column: 1
- kind: SyntaxToken::OPEN_PARENTHESIS
  line: 1
  column: 4
- kind: DataToken::INTEGER
  value: "1"
  line: 1
  column: 5
- kind: SyntaxToken::CLOSE_PARENTHESIS
  line: 1
  column: 6
- kind: BasicToken::EOF
  line: 2
`

type run struct {
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newRun(t *testing.T) *run {
	return &run{dir: t.TempDir()}
}

func (r *run) file(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(r.dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0o644))
	return path
}

func (r *run) exec(args ...string) error {
	app := newApp()
	app.Writer = &r.stdout
	app.ErrWriter = &r.stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	argv := append([]string{"sqz", "--config", filepath.Join(r.dir, "sqz.yaml")}, args...)
	return app.Run(argv)
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	coder, ok := err.(cli.ExitCoder)
	require.True(t, ok, "not an exit error: %v", err)
	return coder.ExitCode()
}

func TestParseCommand(t *testing.T) {
	r := newRun(t)
	input := r.file(t, "main.sqzt", sample)

	require.NoError(t, r.exec("parse", input))
	assert.Equal(t, "Program:\n  LogStmt: LogToken::LOG(IntegerLiteral: 1)\n", r.stdout.String())
}

func TestParseCommandWritesOutputFiles(t *testing.T) {
	r := newRun(t)
	r.file(t, "sqz.yaml", "output: "+filepath.Join(r.dir, "tree.log")+"\noutputLexer: "+filepath.Join(r.dir, "tokens.log")+"\n")
	input := r.file(t, "main.sqzt", sample)

	require.NoError(t, r.exec("parse", "--output", "--output-lexer", input))

	tree, err := ioutil.ReadFile(filepath.Join(r.dir, "tree.log"))
	require.NoError(t, err)
	assert.Equal(t, r.stdout.String(), string(tree))

	listing, err := ioutil.ReadFile(filepath.Join(r.dir, "tokens.log"))
	require.NoError(t, err)
	assert.Contains(t, string(listing), "LogToken::LOG \"log\"")
}

func TestParseCommandFailures(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    int
		message string
	}{
		{"wrong extension", "main.txt", sample, exitUsage, "expected a .sqzt file"},
		{"unknown token kind", "bad.sqzt", "- kind: BasicToken::NOPE\n", exitUsage, "unknown kind"},
		{"grammar violation", "bad.sqzt", "- kind: BasicToken::INIT\n- kind: SyntaxToken::CLOSE_BRACE\n- kind: BasicToken::EOF\n", exitParse, "[InvalidInput]"},
		{"truncated short data", "bad.sqzt", "- kind: BasicToken::INIT\n- kind: SyntaxToken::SHORT_NOTATION\n- kind: BasicToken::EOF\n", exitParse, "[OutOfRange]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRun(t)
			input := r.file(t, tt.file, tt.content)

			err := r.exec("parse", input)
			assert.Equal(t, tt.code, exitCode(t, err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseCommandNeedsOneFile(t *testing.T) {
	r := newRun(t)
	assert.Equal(t, exitUsage, exitCode(t, r.exec("parse")))
}

func TestTokensCommand(t *testing.T) {
	r := newRun(t)
	input := r.file(t, "main.sqzt", sample)

	require.NoError(t, r.exec("tokens", "--format", "yaml", input))
	assert.Contains(t, r.stdout.String(), "kind: LogToken::LOG")
	assert.Contains(t, r.stdout.String(), `value: "1"`)
}

func TestInitCommand(t *testing.T) {
	r := newRun(t)

	require.NoError(t, r.exec("init"))
	settings, err := ioutil.ReadFile(filepath.Join(r.dir, "sqz.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "extension: .sqzt")

	assert.Equal(t, exitUsage, exitCode(t, r.exec("init")))
	require.NoError(t, r.exec("init", "--force"))
}
