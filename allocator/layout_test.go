package allocator_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/allocator"
	"github.com/kestrel-os/bootmem/memutils"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	layout, err := allocator.NewLayout(16, 8)
	require.NoError(t, err)
	require.Equal(t, allocator.Layout{Size: 16, Align: 8}, layout)

	_, err = allocator.NewLayout(16, 12)
	require.Error(t, err)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))

	_, err = allocator.NewLayout(16, 0)
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
}

func TestLayoutAlignment(t *testing.T) {
	require.Equal(t, uintptr(1), allocator.Layout{Size: 4}.Alignment())
	require.Equal(t, uintptr(64), allocator.Layout{Size: 4, Align: 64}.Alignment())
	require.Equal(t, "Layout{Size: 0x10, Align: 0x8}", allocator.Layout{Size: 16, Align: 8}.String())
}
