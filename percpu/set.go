package percpu

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/kestrel-os/bootmem/early"
	"github.com/kestrel-os/bootmem/memutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// Set holds one early allocator per execution core. Each core gets its own region and its own
// allocator value, so cores never contend over a shared cursor.
//
// Set itself is not synchronized: cores are expected to be registered during single-threaded
// boot, after which each core only touches the allocator returned for its own id.
type Set struct {
	logger  *slog.Logger
	options early.CreateOptions

	allocators *swiss.Map[int, *early.Allocator]
}

// NewSet creates an empty Set. Every allocator added to it is created with the provided logger and
// options.
func NewSet(logger *slog.Logger, options early.CreateOptions) *Set {
	return &Set{
		logger:     logger,
		options:    options,
		allocators: swiss.NewMap[int, *early.Allocator](8),
	}
}

// Add creates an allocator for the provided cpu and initializes it over [start, start+size).
// It fails if the cpu already has an allocator.
func (s *Set) Add(cpu int, start, size uintptr) (*early.Allocator, error) {
	if s.allocators.Has(cpu) {
		return nil, errors.Newf("cpu %d already has an early allocator", cpu)
	}

	logger := s.logger
	if logger != nil {
		logger = logger.With(slog.Int("CPU", cpu))
	}

	allocator, err := early.New(logger, s.options)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create early allocator for cpu %d", cpu)
	}
	allocator.Init(start, size)

	s.allocators.Put(cpu, allocator)
	return allocator, nil
}

// Get returns the allocator for the provided cpu, if any
func (s *Set) Get(cpu int) (*early.Allocator, bool) {
	return s.allocators.Get(cpu)
}

// Remove drops the allocator for the provided cpu, typically once that core has switched to its
// permanent allocators. It returns false if the cpu had no allocator.
func (s *Set) Remove(cpu int) bool {
	return s.allocators.Delete(cpu)
}

// Len returns the number of cpus with an allocator
func (s *Set) Len() int {
	return s.allocators.Count()
}

// CPUs returns the ids of every cpu with an allocator, in ascending order
func (s *Set) CPUs() []int {
	cpus := make([]int, 0, s.allocators.Count())
	s.allocators.Iter(func(cpu int, _ *early.Allocator) bool {
		cpus = append(cpus, cpu)
		return false
	})
	sort.Ints(cpus)

	return cpus
}

// ForEach calls the provided callback once per cpu in ascending cpu order, stopping at the first
// error returned.
func (s *Set) ForEach(callback func(cpu int, allocator *early.Allocator) error) error {
	for _, cpu := range s.CPUs() {
		allocator, _ := s.allocators.Get(cpu)
		err := callback(cpu, allocator)
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate runs Validate on every allocator in the set
func (s *Set) Validate() error {
	return s.ForEach(func(cpu int, allocator *early.Allocator) error {
		return errors.Wrapf(allocator.Validate(), "cpu %d", cpu)
	})
}

// AddStatistics sums the statistics of every allocator in the set into stats
func (s *Set) AddStatistics(stats *memutils.Statistics) {
	s.allocators.Iter(func(_ int, allocator *early.Allocator) bool {
		allocator.AddStatistics(stats)
		return false
	})
}

// BuildStatsString returns a json document with the combined statistics of the set and the state
// of every allocator in it, keyed by cpu id.
func (s *Set) BuildStatsString() string {
	var stats memutils.Statistics
	s.AddStatistics(&stats)

	writer := jwriter.NewWriter()
	obj := writer.Object()

	total := obj.Name("Total").Object()
	total.Name("Regions").Int(stats.RegionCount)
	memutils.WriteUint(total.Name("TotalBytes"), stats.RegionBytes)
	memutils.WriteUint(total.Name("UsedBytes"), stats.UsedBytes())
	memutils.WriteUint(total.Name("AvailableBytes"), stats.UnusedBytes)
	total.Name("Allocations").Int(stats.AllocationCount)
	memutils.WriteUint(total.Name("UsedPages"), stats.PageCount)
	total.End()

	cpus := obj.Name("CPUs").Object()
	for _, cpu := range s.CPUs() {
		allocator, _ := s.allocators.Get(cpu)

		entry := cpus.Name(strconv.Itoa(cpu)).Object()
		allocator.WriteJson(&entry)
		entry.End()
	}
	cpus.End()

	obj.End()
	return string(writer.Bytes())
}
