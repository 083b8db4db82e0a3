package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/early"
	"github.com/kestrel-os/bootmem/region"
	"github.com/spf13/cobra"
)

type runOptions struct {
	start        string
	size         string
	pageSize     string
	synchronized bool
	backed       bool
}

func newRunCmd(global *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <op>...",
		Short: "Run allocator operations against a region",
		Long: `The run command initializes an early allocator over a region and applies each
operation in order. A failed operation is reported and the run continues.

Operations:
  alloc:SIZE[:ALIGN]       allocate SIZE bytes (ALIGN defaults to 1)
  free[:SIZE[:ALIGN]]      release one byte allocation
  pages:COUNT[:ALIGN_POW2] allocate COUNT pages aligned to PAGE_SIZE << ALIGN_POW2
  freepages:POS:COUNT      release pages (always ignored)
  addmem:START:SIZE        offer another region (always refused)
  stats                    print the current usage

Numbers may be decimal or 0x-prefixed hexadecimal.

Example:
  bootmem run --start 0x2000 --size 0x4000 alloc:8:8 alloc:16:16 pages:1 free free stats
  bootmem run --backed --size 0x100000 alloc:64:16 pages:4:2 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(cmd.OutOrStdout(), cmd.ErrOrStderr(), global, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "0x2000", "Start address of the simulated region")
	cmd.Flags().StringVar(&opts.size, "size", "0x4000", "Size of the region in bytes")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "4096", "Page size in bytes (power of two)")
	cmd.Flags().BoolVar(&opts.synchronized, "synchronized", false, "Guard the allocator with an internal mutex")
	cmd.Flags().BoolVar(&opts.backed, "backed", false, "Back the region with real memory; --start is ignored")

	return cmd
}

func parseAddress(name, value string) (uintptr, error) {
	parsed, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid --%s %q", name, value)
	}
	return uintptr(parsed), nil
}

func runOps(out, logOut io.Writer, global *globalOptions, opts *runOptions, args []string) error {
	ops, err := parseOps(args)
	if err != nil {
		return err
	}

	start, err := parseAddress("start", opts.start)
	if err != nil {
		return err
	}
	size, err := parseAddress("size", opts.size)
	if err != nil {
		return err
	}
	pageSize, err := parseAddress("page-size", opts.pageSize)
	if err != nil {
		return err
	}

	var flags early.CreateFlags
	if opts.synchronized {
		flags |= early.CreateSynchronized
	}

	allocator, err := early.New(global.newLogger(logOut), early.CreateOptions{
		Flags:    flags,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	if opts.backed {
		backing, err := region.Reserve(size)
		if err != nil {
			return err
		}
		defer func() {
			_ = backing.Release()
		}()
		start = backing.Start()
	}

	allocator.Init(start, size)
	fmt.Fprintf(out, "init start=%#x size=%#x page_size=%d\n", start, size, allocator.PageSize())

	printer := newPrinter()
	for _, op := range ops {
		op.apply(out, printer, allocator)
	}

	if global.jsonOut {
		fmt.Fprintln(out, allocator.BuildStatsString())
	}

	return allocator.Validate()
}
