package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"carbide/internal/errors"
	"carbide/internal/report"
)

// emit reports the diagnostics of one input. JSON goes to stdout so tools
// can consume it; text goes to stderr with a closing summary line.
func (o *options) emit(cmd *cobra.Command, name, src string, diags errors.Diagnostics) error {
	r, err := o.renderer()
	if err != nil {
		return err
	}
	f := report.NewFile(name, src)

	if o.reportFormat() == report.FormatJSON {
		return r.Render(cmd.OutOrStdout(), f, diags)
	}
	if len(diags) == 0 {
		return nil
	}
	if err := r.Render(cmd.ErrOrStderr(), f, diags); err != nil {
		return err
	}
	o.paint(color.FgRed).Fprintln(cmd.ErrOrStderr(), report.Summary(f.DisplayName(), len(diags)))
	return nil
}

// textOutput reports whether results, as opposed to diagnostics, should be
// printed to stdout.
func (o *options) textOutput() bool {
	return o.reportFormat() == report.FormatText
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
