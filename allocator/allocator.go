package allocator

//go:generate mockgen -source allocator.go -destination ./mocks/allocator.go -package mocks

// BaseAllocator is the lifecycle contract shared by every kernel allocator. An allocator is unusable
// until Init has been called with the region it should manage.
type BaseAllocator interface {
	// Init prepares the allocator to hand out memory from [start, start+size). Calling Init again
	// discards whatever the allocator was previously tracking.
	Init(start, size uintptr)
	// AddMemory offers an additional free region to the allocator. Implementations that only support
	// a single region return memutils.ErrNoMemory.
	AddMemory(start, size uintptr) error
}

// ByteAllocator hands out arbitrarily-sized blocks of memory.
type ByteAllocator interface {
	BaseAllocator

	// Alloc returns the address of a block of at least layout.Size bytes aligned to layout.Align.
	Alloc(layout Layout) (uintptr, error)
	// Dealloc returns a block previously produced by Alloc. The layout must be the one the block was
	// allocated with.
	Dealloc(ptr uintptr, layout Layout)

	// TotalBytes returns the size in bytes of the memory managed by the allocator
	TotalBytes() uintptr
	// UsedBytes returns the number of bytes currently unavailable for new allocations
	UsedBytes() uintptr
	// AvailableBytes returns the number of bytes still available for new allocations
	AvailableBytes() uintptr
}

// PageAllocator hands out runs of contiguous pages.
type PageAllocator interface {
	BaseAllocator

	// PageSize returns the size in bytes of a single page. It never changes for a given allocator.
	PageSize() uintptr

	// AllocPages returns the base address of numPages contiguous pages, aligned to
	// PageSize() << alignPow2.
	AllocPages(numPages, alignPow2 uintptr) (uintptr, error)
	// DeallocPages returns a run of pages previously produced by AllocPages.
	DeallocPages(pos, numPages uintptr)

	TotalPages() uintptr
	UsedPages() uintptr
	AvailablePages() uintptr
}
