package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carbide/internal/lexer"
)

func newLexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lex FILE...",
		Short: "Print the token stream of each file",
		Long: `Scan each file and print one token per line. Lexical problems are
reported and scanning resumes after them. Use - to read standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				name, src, err := readSource(cmd, path)
				if err != nil {
					return err
				}

				res := lexer.Lex(src)
				log.Debugf("lexed %s: %d tokens, %d diagnostics", name, len(res.Tokens), len(res.Diagnostics))

				if opts.textOutput() {
					for _, tok := range res.Tokens {
						fmt.Fprintln(cmd.OutOrStdout(), tok)
					}
				}
				if err := opts.emit(cmd, name, src, res.Diagnostics); err != nil {
					return err
				}
				failed = failed || res.HasErrors()
			}
			if failed {
				return errDiagnostics
			}
			return nil
		},
	}
}
