// Package handoff moves the memory an early allocator never used over to the kernel's permanent
// allocator once that allocator is ready to take over.
package handoff

import (
	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/allocator"
	"github.com/kestrel-os/bootmem/memutils"
	"golang.org/x/exp/slog"
)

// Source is the view of an early allocator that Donate needs
type Source interface {
	// Gap returns the start and size of the memory the allocator has not handed out
	Gap() (start, size uintptr)
	// PageSize returns the page granularity of the allocator
	PageSize() uintptr
	// CloseGap stops the allocator from handing out anything from its gap
	CloseGap()
}

// Donate offers the unused gap of from to the successor allocator to, trimmed to whole pages of
// from's page size. The byte area and the page area stay where they are: memory already handed out
// by the early allocator stays live.
//
// Once the successor accepts the memory, from's gap is closed, so later requests to from fail with
// memutils.ErrNoMemory instead of handing out memory the successor owns. If the successor refuses,
// from is left untouched. Donate returns the donated start and size, or memutils.ErrNoMemory if the
// gap does not contain a single whole page.
func Donate(logger *slog.Logger, from Source, to allocator.BaseAllocator) (uintptr, uintptr, error) {
	gapStart, gapSize := from.Gap()
	pageSize := from.PageSize()

	start := memutils.AlignUp(gapStart, pageSize)
	if start < gapStart || start-gapStart >= gapSize {
		return 0, 0, errors.Wrapf(memutils.ErrNoMemory, "gap %#x+%#x holds no whole page", gapStart, gapSize)
	}
	size := memutils.AlignDown(gapSize-(start-gapStart), pageSize)
	if size == 0 {
		return 0, 0, errors.Wrapf(memutils.ErrNoMemory, "gap %#x+%#x holds no whole page", gapStart, gapSize)
	}

	if logger != nil {
		logger.Debug("handoff::Donate", slog.Uint64("Start", uint64(start)), slog.Uint64("Size", uint64(size)))
	}

	err := to.AddMemory(start, size)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "successor allocator refused %#x+%#x", start, size)
	}
	from.CloseGap()

	return start, size, nil
}
