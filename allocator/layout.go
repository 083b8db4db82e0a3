package allocator

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/memutils"
)

// Layout describes the size and alignment of a byte allocation request
type Layout struct {
	// Size is the number of bytes requested
	Size uintptr
	// Align is the required alignment of the returned address. It must be a power of two;
	// zero is treated as 1.
	Align uintptr
}

// NewLayout builds a Layout, returning a wrapped memutils.PowerOfTwoError if align is not a power of two
func NewLayout(size, align uintptr) (Layout, error) {
	err := memutils.CheckPow2(align, "align")
	if err != nil {
		return Layout{}, errors.Wrapf(err, "invalid layout for %d bytes", size)
	}

	return Layout{Size: size, Align: align}, nil
}

// Alignment returns the effective alignment of the layout
func (l Layout) Alignment() uintptr {
	if l.Align == 0 {
		return 1
	}
	return l.Align
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{Size: %#x, Align: %#x}", l.Size, l.Alignment())
}
