package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"carbide/internal/parser"
)

func newParseCmd(opts *options) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse each file and print its syntax tree",
		Long: `Lex and parse each file. The tree is printed when the file has no
problems; otherwise every lexical and syntax error is reported. Use - to
read standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				name, src, err := readSource(cmd, path)
				if err != nil {
					return err
				}

				start := time.Now()
				res := parser.ParseSourceWithOptions(name, src, opts.cfg.ParserOptions())
				elapsed := time.Since(start)
				log.Debugf("parsed %s in %s", name, elapsed)

				diags := res.Diagnostics()
				if err := opts.emit(cmd, name, src, diags); err != nil {
					return err
				}
				if len(diags) > 0 {
					failed = true
					continue
				}

				if opts.textOutput() {
					if !quiet {
						fmt.Fprintln(cmd.OutOrStdout(), res.Program)
					}
					opts.paint(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Successfully parsed %s in %s\n", name, formatDuration(elapsed))
				}
			}
			if failed {
				return errDiagnostics
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report problems, do not print the tree")
	return cmd
}
