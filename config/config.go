// Package config holds the settings read from a project's sqz.yaml.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/sQeeZ-scripting-language/parser", "config")

const DefaultFile = "sqz.yaml"

type Settings struct {
	// Extension is the suffix required of input files.
	Extension   string `yaml:"extension"`
	Dev         bool   `yaml:"dev"`
	LogLevel    string `yaml:"logLevel"`
	Output      string `yaml:"output"`
	OutputLexer string `yaml:"outputLexer"`
}

func Default() Settings {
	return Settings{
		Extension:   ".sqzt",
		LogLevel:    "INFO",
		Output:      "output.log",
		OutputLexer: "output-lexer.log",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		plog.Debugf("%s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, tracerr.Wrap(err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, tracerr.Wrap(err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	plog.Debugf("loaded settings from %s", path)
	return s, nil
}

func (s Settings) Validate() error {
	if !strings.HasPrefix(s.Extension, ".") || len(s.Extension) < 2 {
		return tracerr.Errorf("extension %q must start with a dot", s.Extension)
	}
	if _, err := s.Level(); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}

// Level parses LogLevel; both names ("DEBUG") and letters ("D") work.
func (s Settings) Level() (capnslog.LogLevel, error) {
	level, err := capnslog.ParseLevel(strings.ToUpper(s.LogLevel))
	if err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// Save writes s to path in the format Load reads.
func Save(path string, s Settings) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(ioutil.WriteFile(path, out, 0o644))
}
