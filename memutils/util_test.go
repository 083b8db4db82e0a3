package memutils_test

import (
	"testing"

	"github.com/kestrel-os/bootmem/memutils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckPow2(t *testing.T) {
	for _, value := range []uintptr{1, 2, 8, 4096, 1 << 40} {
		require.NoError(t, memutils.CheckPow2(value, "value"))
	}

	for _, value := range []uintptr{0, 3, 12, 4095} {
		err := memutils.CheckPow2(value, "alignment")
		require.Error(t, err)
		require.True(t, errors.Is(err, memutils.PowerOfTwoError))
		require.Contains(t, err.Error(), "alignment is")
	}
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, uintptr(0x2000), memutils.AlignUp(uintptr(0x2000), 8))
	require.Equal(t, uintptr(0x2010), memutils.AlignUp(uintptr(0x2008), 16))
	require.Equal(t, uintptr(0x2001), memutils.AlignUp(uintptr(0x2001), 1))
	require.Equal(t, 4096, memutils.AlignUp(1, 4096))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, uintptr(0x5000), memutils.AlignDown(uintptr(0x5000), 0x1000))
	require.Equal(t, uintptr(0x4000), memutils.AlignDown(uintptr(0x5fff), 0x2000))
	require.Equal(t, 0, memutils.AlignDown(4095, 4096))
}

func TestStatisticsAdd(t *testing.T) {
	var stats memutils.Statistics
	stats.AddStatistics(&memutils.Statistics{
		RegionCount:     1,
		RegionBytes:     0x4000,
		AllocationCount: 2,
		ByteAreaBytes:   0x20,
		PageAreaBytes:   0x1000,
		PageCount:       1,
		UnusedBytes:     0x2fe0,
	})
	stats.AddStatistics(&memutils.Statistics{
		RegionCount:       1,
		RegionBytes:       0x1000,
		UnusedBytes:       0x1000,
		DeallocUnderflows: 3,
	})

	require.Equal(t, memutils.Statistics{
		RegionCount:       2,
		RegionBytes:       0x5000,
		AllocationCount:   2,
		ByteAreaBytes:     0x20,
		PageAreaBytes:     0x1000,
		PageCount:         1,
		UnusedBytes:       0x3fe0,
		DeallocUnderflows: 3,
	}, stats)
	require.Equal(t, uint64(0x1020), stats.UsedBytes())

	stats.Clear()
	require.Equal(t, memutils.Statistics{}, stats)
}

func TestDebugCheckPow2(t *testing.T) {
	require.NotPanics(t, func() { memutils.DebugCheckPow2(uintptr(4096), "align") })

	if memutils.DebugChecks {
		require.Panics(t, func() { memutils.DebugCheckPow2(uintptr(12), "align") })
	} else {
		require.NotPanics(t, func() { memutils.DebugCheckPow2(uintptr(12), "align") })
	}
}
