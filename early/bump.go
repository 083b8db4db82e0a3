package early

import (
	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/memutils"
)

const (
	maxAddress  = ^uintptr(0)
	addressBits = 32 << (maxAddress >> 63)
)

// bumpState holds the cursors of a double-ended bump region:
//
//	[ byte area | gap | page area ]
//	start    bytePos  pagePos    end
//
// The byte area grows up from start, the page area grows down from end.
type bumpState struct {
	start uintptr
	end   uintptr

	bytePos uintptr
	pagePos uintptr

	allocCount uintptr
}

// init resets the cursors to cover [start, start+size). A region that would run past the end of the
// address space is truncated there; init reports whether that happened.
func (s *bumpState) init(start, size uintptr) bool {
	end := start + size
	truncated := end < start
	if truncated {
		end = maxAddress
	}

	s.start = start
	s.end = end
	s.bytePos = start
	s.pagePos = s.end
	s.allocCount = 0

	return truncated
}

func (s *bumpState) alloc(size, align uintptr) (uintptr, error) {
	if size == 0 {
		return 0, errors.Wrap(memutils.ErrInvalidParam, "allocation size must be greater than 0")
	}
	memutils.DebugCheckPow2(align, "align")

	alignedPos := memutils.AlignUp(s.bytePos, align)
	newPos := alignedPos + size
	if alignedPos < s.bytePos || newPos < alignedPos || newPos > s.pagePos {
		return 0, errors.Wrapf(memutils.ErrNoMemory, "%d bytes aligned to %d do not fit between %#x and %#x", size, align, s.bytePos, s.pagePos)
	}

	if alignedPos == 0 {
		return 0, errors.Wrap(memutils.ErrInvalidParam, "allocation would be placed at the null address")
	}

	s.bytePos = newPos
	s.allocCount++

	return alignedPos, nil
}

// dealloc drops one outstanding byte allocation and reclaims the whole byte area once none are left.
// It reports whether the count was already zero.
func (s *bumpState) dealloc() bool {
	underflow := s.allocCount == 0
	if !underflow {
		s.allocCount--
	}

	if s.allocCount == 0 {
		s.bytePos = s.start
	}

	return underflow
}

func (s *bumpState) allocPages(numPages, alignPow2, pageSize uintptr) (uintptr, error) {
	if numPages == 0 {
		return 0, errors.Wrap(memutils.ErrInvalidParam, "page count must be greater than 0")
	}

	align := pageSize << alignPow2
	if alignPow2 >= addressBits || align>>alignPow2 != pageSize {
		return 0, errors.Wrapf(memutils.ErrNoMemory, "page alignment %d << %d exceeds the address space", pageSize, alignPow2)
	}
	memutils.DebugCheckPow2(align, "align")

	if numPages > maxAddress/pageSize {
		return 0, errors.Wrapf(memutils.ErrNoMemory, "%d pages exceed the address space", numPages)
	}
	bytesSize := numPages * pageSize

	if bytesSize > s.pagePos {
		return 0, errors.Wrapf(memutils.ErrNoMemory, "%d pages do not fit between %#x and %#x", numPages, s.bytePos, s.pagePos)
	}

	alignedPos := memutils.AlignDown(s.pagePos-bytesSize, align)
	if alignedPos < s.bytePos {
		return 0, errors.Wrapf(memutils.ErrNoMemory, "%d pages aligned to %d do not fit between %#x and %#x", numPages, align, s.bytePos, s.pagePos)
	}

	if alignedPos == 0 {
		return 0, errors.Wrap(memutils.ErrInvalidParam, "page run would be placed at the null address")
	}

	s.pagePos = alignedPos

	return alignedPos, nil
}

// closeGap folds the gap into the page area so neither front can advance into it again. The byte
// area is still reclaimed as usual once its last allocation is freed.
func (s *bumpState) closeGap() {
	s.pagePos = s.bytePos
}

func (s *bumpState) totalBytes() uintptr     { return s.end - s.start }
func (s *bumpState) byteAreaBytes() uintptr  { return s.bytePos - s.start }
func (s *bumpState) pageAreaBytes() uintptr  { return s.end - s.pagePos }
func (s *bumpState) usedBytes() uintptr      { return s.byteAreaBytes() + s.pageAreaBytes() }
func (s *bumpState) availableBytes() uintptr { return s.pagePos - s.bytePos }

// Validate checks that the cursors are ordered inside the region and that the byte area is empty
// whenever no byte allocation is outstanding.
func (s *bumpState) Validate() error {
	if s.end < s.start {
		return errors.Errorf("region end %#x is below region start %#x", s.end, s.start)
	}

	if s.bytePos < s.start {
		return errors.Errorf("byte cursor %#x is below region start %#x", s.bytePos, s.start)
	}

	if s.pagePos < s.bytePos {
		return errors.Errorf("page cursor %#x has crossed byte cursor %#x", s.pagePos, s.bytePos)
	}

	if s.end < s.pagePos {
		return errors.Errorf("page cursor %#x is above region end %#x", s.pagePos, s.end)
	}

	if s.allocCount == 0 && s.bytePos != s.start {
		return errors.Errorf("no byte allocations are outstanding, but the byte cursor %#x was not reset to %#x", s.bytePos, s.start)
	}

	if s.usedBytes()+s.availableBytes() != s.totalBytes() {
		return errors.Errorf("used bytes %d and available bytes %d don't add up to the region size %d", s.usedBytes(), s.availableBytes(), s.totalBytes())
	}

	return nil
}
