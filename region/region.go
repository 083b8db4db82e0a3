// Package region provides real, process-owned memory for an early allocator to manage, so that the
// addresses it hands out can actually be written to.
package region

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/memutils"
)

// Region is a contiguous block of read/write memory
type Region struct {
	data    []byte
	release func([]byte) error
}

func newRegion(data []byte, release func([]byte) error) *Region {
	return &Region{data: data, release: release}
}

// Start returns the address of the first byte of the region
func (r *Region) Start() uintptr {
	if len(r.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&r.data[0]))
}

// Size returns the size of the region in bytes
func (r *Region) Size() uintptr {
	return uintptr(len(r.data))
}

// Bytes returns the n bytes of the region starting at addr. It fails with memutils.ErrInvalidParam
// if [addr, addr+n) is not entirely inside the region or the region has been released.
func (r *Region) Bytes(addr, n uintptr) ([]byte, error) {
	start := r.Start()
	if r.data == nil || addr < start || n > r.Size() || addr-start > r.Size()-n {
		return nil, errors.Wrapf(memutils.ErrInvalidParam, "range %#x+%#x is outside the region %#x+%#x", addr, n, start, r.Size())
	}

	offset := addr - start
	return r.data[offset : offset+n : offset+n], nil
}

// Release returns the region's memory to the operating system. Any address inside the region
// must no longer be used afterwards. Releasing twice is a no-op.
func (r *Region) Release() error {
	if r.data == nil {
		return nil
	}

	data := r.data
	r.data = nil
	return r.release(data)
}
