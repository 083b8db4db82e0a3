package main

import (
	"fmt"

	"github.com/kestrel-os/bootmem/early"
	"github.com/spf13/cobra"
)

// scenarioOps replays the reference walkthrough: two byte allocations, one page, both frees, a
// refused region and a rejected zero-size allocation.
var scenarioOps = []string{
	"alloc:8:8",
	"alloc:16:16",
	"pages:1:0",
	"stats",
	"free:8:8",
	"free:16:16",
	"addmem:0x6000:0x1000",
	"alloc:0:1",
	"stats",
}

func newScenarioCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Replay the reference walkthrough over 0x2000+0x4000",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# page size %d, region 0x2000+0x4000\n", early.DefaultPageSize)

			return runOps(out, cmd.ErrOrStderr(), global, &runOptions{
				start:    "0x2000",
				size:     "0x4000",
				pageSize: "4096",
			}, scenarioOps)
		},
	}
}
