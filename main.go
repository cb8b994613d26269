package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/sQeeZ-scripting-language/parser/config"
	"github.com/sQeeZ-scripting-language/parser/errors"
	"github.com/sQeeZ-scripting-language/parser/parser"
	"github.com/sQeeZ-scripting-language/parser/reader"
	"github.com/sQeeZ-scripting-language/parser/types"
)

var plog = capnslog.NewPackageLogger("github.com/sQeeZ-scripting-language/parser", "sqz")

const (
	exitUsage = 1
	exitParse = 2
)

func loadSettings(c *cli.Context) (config.Settings, error) {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return settings, err
	}
	if c.IsSet("log-level") {
		settings.LogLevel = c.String("log-level")
		if err := settings.Validate(); err != nil {
			return settings, err
		}
	}
	return settings, nil
}

// inputFile returns the single positional argument, which must carry the
// configured extension.
func inputFile(c *cli.Context, settings config.Settings) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("usage: %s %s <file>%s", c.App.Name, c.Command.Name, settings.Extension), exitUsage)
	}
	file := c.Args().First()
	if filepath.Ext(file) != settings.Extension {
		return "", cli.Exit(fmt.Sprintf("%s: expected a %s file", file, settings.Extension), exitUsage)
	}
	return file, nil
}

func readInput(c *cli.Context) (config.Settings, []types.Token, error) {
	settings, err := loadSettings(c)
	if err != nil {
		return settings, nil, cli.Exit(err.Error(), exitUsage)
	}
	file, err := inputFile(c, settings)
	if err != nil {
		return settings, nil, err
	}
	tokens, err := reader.ReadFile(file)
	if err != nil {
		return settings, nil, cli.Exit(fmt.Sprintf("error reading %s: %s", file, tracerr.Unwrap(err)), exitUsage)
	}
	return settings, tokens, nil
}

func parseAction(c *cli.Context) error {
	settings, tokens, err := readInput(c)
	if err != nil {
		return err
	}
	dev := settings.Dev || c.Bool("dev")

	if c.Bool("dev-lexer") {
		repr.Println(tokens)
	}
	if c.Bool("output-lexer") {
		fi, err := os.Create(settings.OutputLexer)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error creating %s: %s", settings.OutputLexer, err), exitUsage)
		}
		defer fi.Close()

		if err := reader.WriteListing(fi, tokens); err != nil {
			return cli.Exit(fmt.Sprintf("error writing %s: %s", settings.OutputLexer, tracerr.Unwrap(err)), exitUsage)
		}
	}

	program, err := parser.Parse(tokens, dev)
	if err != nil {
		if dev {
			tracerr.PrintSourceColor(err)
		}
		kind, _ := errors.KindOf(err)
		return cli.Exit(fmt.Sprintf("[%s] %s", kind, tracerr.Unwrap(err)), exitParse)
	}

	fmt.Fprint(c.App.Writer, program)

	if c.Bool("output") {
		err := ioutil.WriteFile(settings.Output, []byte(program.String()), 0o644)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error writing %s: %s", settings.Output, err), exitUsage)
		}
		plog.Infof("wrote tree to %s", settings.Output)
	}
	return nil
}

func tokensAction(c *cli.Context) error {
	_, tokens, err := readInput(c)
	if err != nil {
		return err
	}

	switch format := c.String("format"); format {
	case "listing":
		err = reader.WriteListing(c.App.Writer, tokens)
	case "yaml":
		err = reader.WriteTokens(c.App.Writer, tokens)
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", format), exitUsage)
	}
	if err != nil {
		return cli.Exit(tracerr.Unwrap(err).Error(), exitUsage)
	}
	return nil
}

func initAction(c *cli.Context) error {
	path := c.String("config")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return cli.Exit(fmt.Sprintf("%s already exists", path), exitUsage)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return cli.Exit(fmt.Sprintf("error creating %s: %s", path, tracerr.Unwrap(err)), exitUsage)
	}
	plog.Infof("wrote %s", path)
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "sqz",
		Usage:     "sQeeZ parser",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultFile,
				Usage: "settings file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
		},
		Before: func(c *cli.Context) error {
			capnslog.SetFormatter(capnslog.NewPrettyFormatter(c.App.ErrWriter, false))

			settings, err := loadSettings(c)
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}
			level, _ := settings.Level()
			capnslog.SetGlobalLogLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "parse a token dump and print its tree",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dev",
						Usage: "log the tree and print traces on failure",
					},
					&cli.BoolFlag{
						Name:  "output",
						Usage: "also write the tree to the configured output file",
					},
					&cli.BoolFlag{
						Name:  "dev-lexer",
						Usage: "dump the token stream",
					},
					&cli.BoolFlag{
						Name:  "output-lexer",
						Usage: "write the token listing to the configured lexer output file",
					},
				},
				Action: parseAction,
			},
			{
				Name:      "tokens",
				Usage:     "print a token dump",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "listing",
						Usage: "listing or yaml",
					},
				},
				Action: tokensAction,
			},
			{
				Name:  "init",
				Usage: "write a default settings file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: initAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}
