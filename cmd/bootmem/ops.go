package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/allocator"
	"github.com/kestrel-os/bootmem/early"
	"golang.org/x/text/message"
)

type opKind int

const (
	opAlloc opKind = iota
	opFree
	opPages
	opFreePages
	opAddMemory
	opStats
)

var opNames = map[string]opKind{
	"alloc":     opAlloc,
	"free":      opFree,
	"pages":     opPages,
	"freepages": opFreePages,
	"addmem":    opAddMemory,
	"stats":     opStats,
}

// operation is one parsed command line operation. The meaning of a and b depends on kind.
type operation struct {
	kind opKind
	a    uintptr
	b    uintptr
}

// argument bounds per kind: required, optional, default for b
var opArity = map[opKind]struct {
	required, max int
	defaultB      uintptr
}{
	opAlloc:     {1, 2, 1},
	opFree:      {0, 2, 1},
	opPages:     {1, 2, 0},
	opFreePages: {2, 2, 0},
	opAddMemory: {2, 2, 0},
	opStats:     {0, 0, 0},
}

func parseOp(text string) (operation, error) {
	fields := strings.Split(text, ":")

	kind, ok := opNames[fields[0]]
	if !ok {
		return operation{}, errors.Newf("unknown operation %q", text)
	}

	args := fields[1:]
	arity := opArity[kind]
	if len(args) < arity.required || len(args) > arity.max {
		return operation{}, errors.Newf("operation %q takes between %d and %d arguments", text, arity.required, arity.max)
	}

	op := operation{kind: kind, b: arity.defaultB}
	for i, arg := range args {
		value, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return operation{}, errors.Wrapf(err, "operation %q", text)
		}

		if i == 0 {
			op.a = uintptr(value)
		} else {
			op.b = uintptr(value)
		}
	}

	return op, nil
}

func parseOps(args []string) ([]operation, error) {
	ops := make([]operation, 0, len(args))
	for _, arg := range args {
		op, err := parseOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func (op operation) apply(out io.Writer, printer *message.Printer, a *early.Allocator) {
	switch op.kind {
	case opAlloc:
		layout := allocator.Layout{Size: op.a, Align: op.b}
		ptr, err := a.Alloc(layout)
		report(out, fmt.Sprintf("alloc size=%#x align=%#x", op.a, op.b), ptr, err)
	case opFree:
		a.Dealloc(0, allocator.Layout{Size: op.a, Align: op.b})
		gapStart, _ := a.Gap()
		fmt.Fprintf(out, "free -> allocations=%d byte_pos=%#x\n", a.AllocationCount(), gapStart)
	case opPages:
		pos, err := a.AllocPages(op.a, op.b)
		report(out, fmt.Sprintf("pages count=%d align_pow2=%d", op.a, op.b), pos, err)
	case opFreePages:
		a.DeallocPages(op.a, op.b)
		fmt.Fprintf(out, "freepages pos=%#x count=%d -> ignored\n", op.a, op.b)
	case opAddMemory:
		err := a.AddMemory(op.a, op.b)
		report(out, fmt.Sprintf("addmem start=%#x size=%#x", op.a, op.b), 0, err)
	case opStats:
		printStats(out, printer, a)
	}
}

func report(out io.Writer, what string, addr uintptr, err error) {
	if err != nil {
		fmt.Fprintf(out, "%s -> error: %v\n", what, err)
		return
	}
	fmt.Fprintf(out, "%s -> %#x\n", what, addr)
}

func printStats(out io.Writer, printer *message.Printer, a *early.Allocator) {
	printer.Fprintf(out, "bytes: total=%d used=%d available=%d\n", a.TotalBytes(), a.UsedBytes(), a.AvailableBytes())
	printer.Fprintf(out, "pages: total=%d used=%d available=%d\n", a.TotalPages(), a.UsedPages(), a.AvailablePages())
	printer.Fprintf(out, "allocations: %d\n", a.AllocationCount())
}
