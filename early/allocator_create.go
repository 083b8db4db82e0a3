package early

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/kestrel-os/bootmem/memutils"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

var allocatorCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	allocatorCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return allocatorCreateFlagsMapping.FlagsToString(f)
}

const (
	// CreateSynchronized guards every call on the allocator with an internal mutex. By default the
	// allocator performs no locking at all: during early boot there is usually a single execution
	// context, and otherwise the consumer is expected to serialize calls itself.
	CreateSynchronized CreateFlags = 1 << iota
)

func init() {
	CreateSynchronized.Register("CreateSynchronized")
}

const (
	// DefaultPageSize is the page size used when CreateOptions.PageSize is left at 0, and by the
	// zero value of Allocator.
	DefaultPageSize uintptr = 4096
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard))

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags
	// PageSize is the size in bytes of the pages handed out by AllocPages. It must be a power of
	// two and is fixed for the lifetime of the allocator. 0 selects DefaultPageSize.
	PageSize uintptr
}

// New creates a new, uninitialized Allocator. Init must be called before memory can be allocated.
//
// logger - Receives debug output for every operation. May be nil.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, options CreateOptions) (*Allocator, error) {
	pageSize := options.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	err := memutils.CheckPow2(pageSize, "early.CreateOptions.PageSize")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create early allocator")
	}

	if logger == nil {
		logger = discardLogger
	}

	allocator := &Allocator{
		logger:   logger,
		flags:    options.Flags,
		pageSize: pageSize,
	}
	allocator.mutex.UseMutex = options.Flags&CreateSynchronized != 0

	return allocator, nil
}
