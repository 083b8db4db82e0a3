package early

import (
	"github.com/kestrel-os/bootmem/memutils"
	"golang.org/x/exp/slog"
)

// PageSize returns the size in bytes of the pages handed out by AllocPages
func (a *Allocator) PageSize() uintptr {
	if a.pageSize == 0 {
		return DefaultPageSize
	}
	return a.pageSize
}

// AllocPages bumps the page cursor backward to make room for numPages contiguous pages and returns
// the base address of the run. The run is aligned to PageSize() << alignPow2, so alignPow2 0 aligns
// to a single page, 1 to two pages, and so on.
//
// It returns memutils.ErrInvalidParam if numPages is 0 and memutils.ErrNoMemory if the run would
// run into the byte area. A failed call changes nothing.
func (a *Allocator) AllocPages(numPages, alignPow2 uintptr) (uintptr, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.log().Debug("Allocator::AllocPages", slog.Uint64("NumPages", uint64(numPages)), slog.Uint64("AlignPow2", uint64(alignPow2)))

	pos, err := a.state.allocPages(numPages, alignPow2, a.PageSize())
	if err != nil {
		a.log().Debug("  Allocator::AllocPages FAILED", slog.Any("error", err))
		return 0, err
	}

	memutils.DebugValidate(&a.state)
	return pos, nil
}

// DeallocPages does nothing. Pages handed out by the early allocator are expected to stay in use
// for the lifetime of whatever consumed them and are never returned.
func (a *Allocator) DeallocPages(pos, numPages uintptr) {
	a.log().Debug("Allocator::DeallocPages", slog.String("Pos", hex(pos)), slog.Uint64("NumPages", uint64(numPages)))
}

func (a *Allocator) TotalPages() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.totalBytes() / a.PageSize()
}

func (a *Allocator) UsedPages() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.pageAreaBytes() / a.PageSize()
}

func (a *Allocator) AvailablePages() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.availableBytes() / a.PageSize()
}
