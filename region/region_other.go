//go:build !unix

package region

import (
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/memutils"
)

// Reserve allocates size bytes of zeroed memory from the Go heap when mmap is not available. The
// region starts on an operating system page boundary.
func Reserve(size uintptr) (*Region, error) {
	if size == 0 {
		return nil, errors.Wrap(memutils.ErrInvalidParam, "region size must be greater than 0")
	}

	pageSize := uintptr(os.Getpagesize())
	buffer := make([]byte, size+pageSize)
	base := uintptr(unsafe.Pointer(&buffer[0]))
	offset := memutils.AlignUp(base, pageSize) - base

	return newRegion(buffer[offset:offset+size:offset+size], func([]byte) error { return nil }), nil
}
