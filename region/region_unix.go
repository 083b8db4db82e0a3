//go:build unix

package region

import (
	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/memutils"
	"golang.org/x/sys/unix"
)

// Reserve maps size bytes of anonymous, zeroed, read/write memory. The region starts on an
// operating system page boundary.
func Reserve(size uintptr) (*Region, error) {
	if size == 0 {
		return nil, errors.Wrap(memutils.ErrInvalidParam, "region size must be greater than 0")
	}

	data, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map %d bytes", size)
	}

	return newRegion(data, unix.Munmap), nil
}
