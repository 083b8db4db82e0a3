package memutils

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Number is any integer type that addresses, sizes, and alignments can be expressed in
type Number interface {
	constraints.Integer
}

// CheckPow2 returns a wrapped PowerOfTwoError if number is zero or not a power of two. name is used
// to identify the offending value in the error message.
func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two.
// The result wraps around if value is within alignment of the type's maximum; callers that
// care should check that the result is not smaller than value.
func AlignUp[T Number](value, alignment T) T {
	return (value + alignment - 1) &^ (alignment - 1)
}

// AlignDown rounds value down to the previous multiple of alignment, which must be a power of two.
func AlignDown[T Number](value, alignment T) T {
	return value &^ (alignment - 1)
}
