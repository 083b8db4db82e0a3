package handoff_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/allocator"
	"github.com/kestrel-os/bootmem/allocator/mocks"
	"github.com/kestrel-os/bootmem/early"
	"github.com/kestrel-os/bootmem/handoff"
	"github.com/kestrel-os/bootmem/memutils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDonate(t *testing.T) {
	ctrl := gomock.NewController(t)

	a, err := early.New(nil, early.CreateOptions{})
	require.NoError(t, err)
	a.Init(0x2000, 0x8000)

	_, err = a.Alloc(allocator.Layout{Size: 0x20, Align: 8})
	require.NoError(t, err)
	_, err = a.AllocPages(2, 0)
	require.NoError(t, err)

	successor := mocks.NewMockBaseAllocator(ctrl)
	successor.EXPECT().AddMemory(uintptr(0x3000), uintptr(0x5000)).Return(nil)

	start, size, err := handoff.Donate(nil, a, successor)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x3000), start)
	require.Equal(t, uintptr(0x5000), size)

	// The early allocator's live memory is untouched
	require.Equal(t, 1, a.AllocationCount())
	require.NoError(t, a.Validate())
}

func TestDonateClosesGap(t *testing.T) {
	ctrl := gomock.NewController(t)

	a, err := early.New(nil, early.CreateOptions{})
	require.NoError(t, err)
	a.Init(0x2000, 0x8000)

	layout := allocator.Layout{Size: 0x20, Align: 8}
	ptr, err := a.Alloc(layout)
	require.NoError(t, err)
	_, err = a.AllocPages(2, 0)
	require.NoError(t, err)

	successor := mocks.NewMockBaseAllocator(ctrl)
	successor.EXPECT().AddMemory(uintptr(0x3000), uintptr(0x5000)).Return(nil)

	_, _, err = handoff.Donate(nil, a, successor)
	require.NoError(t, err)

	gapStart, gapSize := a.Gap()
	require.Equal(t, uintptr(0x2020), gapStart)
	require.Equal(t, uintptr(0), gapSize)
	require.Equal(t, uintptr(0x8000), a.TotalBytes())
	require.NoError(t, a.Validate())

	_, err = a.Alloc(allocator.Layout{Size: 8, Align: 8})
	require.True(t, errors.Is(err, memutils.ErrNoMemory))
	_, err = a.AllocPages(1, 0)
	require.True(t, errors.Is(err, memutils.ErrNoMemory))

	// Freeing the byte area hands back only memory below the donated range
	a.Dealloc(ptr, layout)
	ptr, err = a.Alloc(allocator.Layout{Size: 0x10, Align: 8})
	require.NoError(t, err)
	require.Equal(t, uintptr(0x2000), ptr)

	_, err = a.Alloc(allocator.Layout{Size: 0x20, Align: 8})
	require.True(t, errors.Is(err, memutils.ErrNoMemory))
	require.NoError(t, a.Validate())
}

func TestDonateRefused(t *testing.T) {
	ctrl := gomock.NewController(t)

	a, err := early.New(nil, early.CreateOptions{})
	require.NoError(t, err)
	a.Init(0x2000, 0x4000)

	successor := mocks.NewMockBaseAllocator(ctrl)
	successor.EXPECT().AddMemory(uintptr(0x2000), uintptr(0x4000)).Return(memutils.ErrNoMemory)

	_, _, err = handoff.Donate(nil, a, successor)
	require.Error(t, err)
	require.True(t, errors.Is(err, memutils.ErrNoMemory))

	// A refused donation leaves the gap with the early allocator
	gapStart, gapSize := a.Gap()
	require.Equal(t, uintptr(0x2000), gapStart)
	require.Equal(t, uintptr(0x4000), gapSize)
}

func TestDonateEmptyGap(t *testing.T) {
	ctrl := gomock.NewController(t)

	a, err := early.New(nil, early.CreateOptions{})
	require.NoError(t, err)
	a.Init(0x2000, 0x2000)

	_, err = a.Alloc(allocator.Layout{Size: 0x10, Align: 8})
	require.NoError(t, err)
	_, err = a.AllocPages(1, 0)
	require.NoError(t, err)

	// AddMemory must not be called: the gap 0x2010-0x3000 holds no whole page
	successor := mocks.NewMockBaseAllocator(ctrl)

	_, _, err = handoff.Donate(nil, a, successor)
	require.True(t, errors.Is(err, memutils.ErrNoMemory))
}

func TestDonateToAnotherEarlyAllocator(t *testing.T) {
	from, err := early.New(nil, early.CreateOptions{})
	require.NoError(t, err)
	from.Init(0x2000, 0x4000)

	to, err := early.New(nil, early.CreateOptions{})
	require.NoError(t, err)

	// Early allocators only ever manage the region they were initialized with
	_, _, err = handoff.Donate(nil, from, to)
	require.True(t, errors.Is(err, memutils.ErrNoMemory))
}
