package early

import (
	"strconv"

	"github.com/kestrel-os/bootmem/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

func hex(value uintptr) string {
	return "0x" + strconv.FormatUint(uint64(value), 16)
}

// AddStatistics sums this allocator's statistics into the statistics currently present in the
// provided memutils.Statistics object.
func (a *Allocator) AddStatistics(stats *memutils.Statistics) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	stats.RegionCount++
	stats.RegionBytes += uint64(a.state.totalBytes())
	stats.AllocationCount += int(a.state.allocCount)
	stats.ByteAreaBytes += uint64(a.state.byteAreaBytes())
	stats.PageAreaBytes += uint64(a.state.pageAreaBytes())
	stats.PageCount += uint64(a.state.pageAreaBytes() / a.PageSize())
	stats.UnusedBytes += uint64(a.state.availableBytes())
	stats.DeallocUnderflows += a.deallocUnderflows
}

// WriteJson populates a json object with information about this allocator
func (a *Allocator) WriteJson(json *jwriter.ObjectState) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	pageSize := a.PageSize()

	json.Name("Start").String(hex(a.state.start))
	json.Name("End").String(hex(a.state.end))
	json.Name("BytePos").String(hex(a.state.bytePos))
	json.Name("PagePos").String(hex(a.state.pagePos))
	memutils.WriteUint(json.Name("PageSize"), pageSize)
	if a.flags != 0 {
		json.Name("Flags").String(a.flags.String())
	}

	memutils.WriteUint(json.Name("TotalBytes"), a.state.totalBytes())
	memutils.WriteUint(json.Name("UsedBytes"), a.state.usedBytes())
	memutils.WriteUint(json.Name("AvailableBytes"), a.state.availableBytes())
	memutils.WriteUint(json.Name("Allocations"), a.state.allocCount)

	memutils.WriteUint(json.Name("TotalPages"), a.state.totalBytes()/pageSize)
	memutils.WriteUint(json.Name("UsedPages"), a.state.pageAreaBytes()/pageSize)
	memutils.WriteUint(json.Name("AvailablePages"), a.state.availableBytes()/pageSize)

	if a.deallocUnderflows > 0 {
		json.Name("DeallocUnderflows").Int(a.deallocUnderflows)
	}
}

// BuildStatsString returns a json document describing the allocator's current state
func (a *Allocator) BuildStatsString() string {
	writer := jwriter.NewWriter()
	obj := writer.Object()
	a.WriteJson(&obj)
	obj.End()

	return string(writer.Bytes())
}
