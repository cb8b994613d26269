// Package reader loads and stores token streams in the YAML dump format the
// lexer emits, so the parser can run without a lexer in-process.
package reader

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"github.com/sQeeZ-scripting-language/parser/types"
)

var plog = capnslog.NewPackageLogger("github.com/sQeeZ-scripting-language/parser", "reader")

// entry is one token of a dump. Value is omitted when it equals the kind's
// fixed spelling.
type entry struct {
	Kind   string `yaml:"kind"`
	Value  string `yaml:"value,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Column int    `yaml:"column,omitempty"`
}

type UnknownKind struct {
	Index int
	Kind  string
}

func (e UnknownKind) Error() string {
	return fmt.Sprintf("token %d: unknown kind %q", e.Index, e.Kind)
}

// ReadTokens decodes a dump. filename is recorded in every token location.
func ReadTokens(r io.Reader, filename string) ([]types.Token, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, tracerr.Wrap(err)
	}

	tokens := make([]types.Token, 0, len(entries))
	for i, e := range entries {
		kind, ok := types.ParseKind(e.Kind)
		if !ok {
			return nil, tracerr.Wrap(UnknownKind{Index: i, Kind: e.Kind})
		}
		at := types.Position{Line: e.Line, Column: e.Column, Filename: filename}
		tokens = append(tokens, types.NewToken(kind, e.Value, at))
	}

	plog.Debugf("read %d tokens from %s", len(tokens), filename)
	return tokens, nil
}

func ReadFile(path string) ([]types.Token, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer fi.Close()

	return ReadTokens(fi, path)
}

// WriteTokens encodes tokens in the dump format read by ReadTokens.
func WriteTokens(w io.Writer, tokens []types.Token) error {
	entries := make([]entry, 0, len(tokens))
	for _, tok := range tokens {
		e := entry{
			Kind:   tok.PlainText(),
			Line:   tok.Location.From.Line,
			Column: tok.Location.From.Column,
		}
		if tok.Kind == nil || tok.Value != tok.Kind.Text() {
			e.Value = tok.Value
		}
		entries = append(entries, e)
	}

	out, err := yaml.Marshal(entries)
	if err != nil {
		return tracerr.Wrap(err)
	}
	_, err = w.Write(out)
	return tracerr.Wrap(err)
}

// WriteListing writes one human readable line per token.
func WriteListing(w io.Writer, tokens []types.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return tracerr.Wrap(err)
		}
	}
	return nil
}
