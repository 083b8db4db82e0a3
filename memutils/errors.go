package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// ErrNoMemory is returned when a request cannot be satisfied from the remaining free memory, or when an
// allocator is asked to manage memory it does not support
var ErrNoMemory error = errors.New("no memory")

// ErrInvalidParam is returned when a request is malformed: a zero size, a zero page count, or a request
// that would produce a null address
var ErrInvalidParam error = errors.New("invalid parameter")
