package main

import (
	"github.com/spf13/cobra"

	"carbide/internal/repl"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer()
			if err != nil {
				return err
			}
			return repl.RunTerminal(cmd.OutOrStdout(), repl.Options{
				Parser:   opts.cfg.ParserOptions(),
				Renderer: r,
			})
		},
	}
}
