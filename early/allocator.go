package early

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/allocator"
	"github.com/kestrel-os/bootmem/internal/utils"
	"github.com/kestrel-os/bootmem/memutils"
	"golang.org/x/exp/slog"
)

// Allocator is the early memory allocator, used before the kernel's permanent byte and page
// allocators can work. It manages a single region of memory from both ends:
//
//	[ bytes-used | avail-area | pages-used ]
//	|            | -->    <-- |            |
//	start      bytePos     pagePos       end
//
// Byte allocations are bumped forward from the start of the region and page allocations are bumped
// backward from the end. The allocator only counts outstanding byte allocations: the byte area is
// reclaimed all at once when that count returns to zero. Pages are never reclaimed.
//
// The zero value is an uninitialized, unsynchronized allocator with a DefaultPageSize page size.
// Allocators created with New may choose another page size, which cannot be changed afterwards.
type Allocator struct {
	mutex    utils.OptionalMutex
	logger   *slog.Logger
	flags    CreateFlags
	pageSize uintptr

	state             bumpState
	deallocUnderflows int
}

var _ allocator.ByteAllocator = &Allocator{}
var _ allocator.PageAllocator = &Allocator{}
var _ memutils.Validatable = &Allocator{}

func (a *Allocator) log() *slog.Logger {
	if a.logger == nil {
		return discardLogger
	}
	return a.logger
}

// Flags returns the CreateFlags this allocator was created with
func (a *Allocator) Flags() CreateFlags {
	return a.flags
}

// Init prepares the allocator to hand out memory from [start, start+size). It cannot fail.
//
// Calling Init on an allocator that is already in use resets all of its state: any outstanding
// byte or page allocations are forgotten and their memory will be handed out again. Consumers
// should call Init once per region.
func (a *Allocator) Init(start, size uintptr) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.log().Debug("Allocator::Init", slog.String("Start", hex(start)), slog.String("Size", hex(size)))

	if a.state.allocCount > 0 || a.state.pagePos != a.state.end {
		a.log().LogAttrs(context.Background(), slog.LevelWarn, "re-initializing an allocator with live allocations",
			slog.Uint64("OutstandingAllocations", uint64(a.state.allocCount)),
			slog.Uint64("PageAreaBytes", uint64(a.state.pageAreaBytes())),
		)
	}

	if a.state.init(start, size) {
		a.log().LogAttrs(context.Background(), slog.LevelWarn, "region runs past the end of the address space and was truncated",
			slog.String("Start", hex(start)),
			slog.String("Size", hex(size)),
		)
	}
	a.deallocUnderflows = 0

	memutils.DebugValidate(&a.state)
}

// AddMemory always fails with memutils.ErrNoMemory: the early allocator manages exactly one
// region for its entire lifetime.
func (a *Allocator) AddMemory(start, size uintptr) error {
	a.log().Debug("Allocator::AddMemory", slog.String("Start", hex(start)), slog.String("Size", hex(size)))

	return errors.Wrapf(memutils.ErrNoMemory, "the early allocator cannot add the region at %#x", start)
}

// Alloc bumps the byte cursor forward to make room for the requested layout and returns the
// aligned address of the new block. It returns memutils.ErrInvalidParam if layout.Size is 0 and
// memutils.ErrNoMemory if the block would run into the page area. A failed call changes nothing.
//
// layout.Align must be a power of two. This is only checked when built with the debug_mem_utils tag.
func (a *Allocator) Alloc(layout allocator.Layout) (uintptr, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.log().Debug("Allocator::Alloc", slog.Uint64("Size", uint64(layout.Size)), slog.Uint64("Align", uint64(layout.Alignment())))

	ptr, err := a.state.alloc(layout.Size, layout.Alignment())
	if err != nil {
		a.log().Debug("  Allocator::Alloc FAILED", slog.Any("error", err))
		return 0, err
	}

	memutils.DebugValidate(&a.state)
	return ptr, nil
}

// Dealloc releases one byte allocation. The address and layout are ignored: the allocator only
// tracks how many byte allocations are outstanding, and resets the byte area once that number
// reaches zero. Until then, released bytes stay unavailable.
//
// Releasing more allocations than were made is tolerated; the extra calls are logged and counted
// in Statistics.DeallocUnderflows but otherwise ignored.
func (a *Allocator) Dealloc(ptr uintptr, layout allocator.Layout) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.log().Debug("Allocator::Dealloc", slog.String("Ptr", hex(ptr)), slog.Uint64("Size", uint64(layout.Size)))

	if a.state.dealloc() {
		a.deallocUnderflows++
		a.log().LogAttrs(context.Background(), slog.LevelWarn, "dealloc called with no outstanding byte allocations",
			slog.String("Ptr", hex(ptr)),
			slog.Uint64("Size", uint64(layout.Size)),
		)
	}

	memutils.DebugValidate(&a.state)
}

// TotalBytes returns the size of the region in bytes
func (a *Allocator) TotalBytes() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.totalBytes()
}

// UsedBytes returns the number of bytes in the byte area plus the number of bytes in the page area
func (a *Allocator) UsedBytes() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.usedBytes()
}

// AvailableBytes returns the size of the gap between the byte area and the page area
func (a *Allocator) AvailableBytes() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.availableBytes()
}

// AllocationCount returns the number of outstanding byte allocations
func (a *Allocator) AllocationCount() int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return int(a.state.allocCount)
}

// Region returns the start and size of the region passed to Init
func (a *Allocator) Region() (start, size uintptr) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.start, a.state.totalBytes()
}

// Gap returns the start and size of the free space between the byte area and the page area
func (a *Allocator) Gap() (start, size uintptr) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.bytePos, a.state.availableBytes()
}

// CloseGap gives up the free space between the byte area and the page area, typically after it was
// handed to another allocator. The closed gap counts as page area from then on, and requests that
// needed it fail with memutils.ErrNoMemory.
func (a *Allocator) CloseGap() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.log().Debug("Allocator::CloseGap", slog.String("Start", hex(a.state.bytePos)), slog.String("Size", hex(a.state.availableBytes())))

	a.state.closeGap()
	memutils.DebugValidate(&a.state)
}

// Validate performs internal consistency checks on the allocator's cursors. When the allocator is
// functioning correctly, it should not be possible for this method to return an error.
func (a *Allocator) Validate() error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.state.Validate()
}
