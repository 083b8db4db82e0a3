package memutils

import (
	"encoding/json"
	"strconv"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics summarizes the state of one or more early allocators. All byte counts are in bytes,
// PageCount is in pages of the owning allocator's page size.
type Statistics struct {
	RegionCount     int
	RegionBytes     uint64
	AllocationCount int

	ByteAreaBytes uint64
	PageAreaBytes uint64
	PageCount     uint64
	UnusedBytes   uint64

	// DeallocUnderflows counts byte deallocations received while no allocation was outstanding
	DeallocUnderflows int
}

func (s *Statistics) Clear() {
	s.RegionCount = 0
	s.RegionBytes = 0
	s.AllocationCount = 0
	s.ByteAreaBytes = 0
	s.PageAreaBytes = 0
	s.PageCount = 0
	s.UnusedBytes = 0
	s.DeallocUnderflows = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.RegionCount += other.RegionCount
	s.RegionBytes += other.RegionBytes
	s.AllocationCount += other.AllocationCount
	s.ByteAreaBytes += other.ByteAreaBytes
	s.PageAreaBytes += other.PageAreaBytes
	s.PageCount += other.PageCount
	s.UnusedBytes += other.UnusedBytes
	s.DeallocUnderflows += other.DeallocUnderflows
}

// UsedBytes is the number of bytes held by either the byte area or the page area
func (s *Statistics) UsedBytes() uint64 {
	return s.ByteAreaBytes + s.PageAreaBytes
}

// WriteUint writes an unsigned json number. jwriter only offers int and float64 numbers, which
// cannot hold every address-sized value exactly.
func WriteUint[T Number](w *jwriter.Writer, value T) {
	w.Raw(json.RawMessage(strconv.FormatUint(uint64(value), 10)))
}
