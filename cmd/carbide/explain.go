package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"carbide/internal/errors"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [CODE]",
		Short: "Describe an error code, or list all of them",
		Example: `  carbide explain E0003
  carbide explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, c := range errors.Codes() {
					fmt.Fprintf(out, "%s  %-7s %s\n", c, errors.Category(c), errors.Description(c))
				}
				return nil
			}

			code, err := errors.ParseCode(args[0])
			if err != nil {
				return err
			}
			if !slices.Contains(errors.Codes(), code) {
				return fmt.Errorf("unknown error code %s", code)
			}
			fmt.Fprintf(out, "%s (%s error)\n\n%s\n", code, errors.Category(code), errors.Description(code))
			return nil
		},
	}
}
