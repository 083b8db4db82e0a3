package main

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type globalOptions struct {
	verbose bool
	jsonOut bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "bootmem",
		Short: "Exercise an early-boot double-ended bump allocator",
		Long: `bootmem runs a sequence of allocator operations against an early allocator.
Byte allocations grow up from the start of the region and page allocations grow down
from its end; the command prints the outcome of every operation.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every allocator call")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print the final allocator state as JSON")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newScenarioCmd(opts))

	return cmd
}

// newLogger returns the logger handed to the allocator. Without --verbose only warnings are shown.
func (o *globalOptions) newLogger(out io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(out))
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}
