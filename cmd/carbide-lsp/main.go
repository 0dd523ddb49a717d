// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/glsp/server"

	"carbide/internal/config"
	"carbide/internal/lsp"
)

var version = "0.1.0"

var log = commonlog.GetLogger("carbide.lsp.main")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
		verbose    int
		debug      bool
	)

	cmd := &cobra.Command{
		Use:           "carbide-lsp",
		Short:         "Language server for carbide over standard input and output",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, err := config.LoadOrDiscover(configPath, dir)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// stdout carries the protocol, so logs go to stderr or a file
			if cmd.Flags().Changed("log-file") {
				cfg.Log.File = logFile
			}
			commonlog.Configure(cfg.Log.Verbosity+verbose, cfg.LogFile())

			handler := lsp.NewCarbideHandler(cfg.ParserOptions(), version).Protocol()
			s := server.NewServer(handler, lsp.Name, debug)

			log.Infof("starting %s language server %s", lsp.Name, version)
			if err := s.RunStdio(); err != nil {
				return fmt.Errorf("language server stopped: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default: discovered carbide.toml/carbide.yaml)")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.BoolVar(&debug, "debug", false, "log every protocol message")
	return cmd
}
