package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"carbide/internal/config"
	"carbide/internal/report"
)

var log = commonlog.GetLogger("carbide.cli")

// errDiagnostics is returned when input was read but had problems; they
// have already been reported.
var errDiagnostics = stderrors.New("diagnostics reported")

// options holds the global flags and the configuration resolved from them.
type options struct {
	configPath string
	format     string
	color      string
	verbose    int

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "carbide",
		Short: "Lexer and parser for the carbide language",
		Long: `carbide turns source text into tokens and syntax trees and reports
every lexical and syntactic problem it finds.

Settings are read from carbide.toml or carbide.yaml in the current
directory or one of its parents; flags override them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: discovered carbide.toml/carbide.yaml)")
	flags.StringVar(&opts.format, "format", "", "diagnostic format: text or json")
	flags.StringVar(&opts.color, "color", "", "colorize output: auto, always or never")
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	root.AddCommand(
		newLexCmd(opts),
		newParseCmd(opts),
		newReplCmd(opts),
		newExplainCmd(),
		newVersionCmd(),
	)
	return root
}

// resolve loads the configuration, applies flag overrides and configures
// logging.
func (o *options) resolve(cmd *cobra.Command) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadOrDiscover(o.configPath, dir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Report.Format = o.format
	}
	if flags.Changed("color") {
		cfg.Report.Color = o.color
	}
	cfg.Log.Verbosity += o.verbose

	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())
	if cfg.Path != "" {
		log.Infof("using config %s", cfg.Path)
	}
	return nil
}

func (o *options) reportFormat() report.Format {
	// validated in resolve
	f, _ := report.ParseFormat(o.cfg.Report.Format)
	return f
}

// reportOptions decides color from the config and whether stdout is a
// terminal, which fatih/color has already detected.
func (o *options) reportOptions() report.Options {
	return o.cfg.ReportOptions(!color.NoColor)
}

func (o *options) renderer() (report.Renderer, error) {
	return report.New(o.reportFormat(), o.reportOptions())
}

// paint returns a color printer honoring the resolved color mode.
func (o *options) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if o.reportOptions().Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// readSource reads path, or standard input when path is "-".
func readSource(cmd *cobra.Command, path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return path, string(data), nil
}
