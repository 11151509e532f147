package utils

import (
	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	return (T(1) << bits) - T(1)
}

// Returns true if the value fits in an unsigned integer of n bits
func IsUInt[T constraints.Integer](bits int, value T) bool {
	if value < 0 {
		return false
	}

	return uint64(value)>>bits == 0
}

// Returns true if the value fits in a two's complement signed integer of n bits
func IsInt[T constraints.Signed](bits int, value T) bool {
	min := -(int64(1) << (bits - 1))
	max := (int64(1) << (bits - 1)) - 1
	return int64(value) >= min && int64(value) <= max
}

// Interprets the n least significant bits of value as a two's complement signed integer
func SignExtend(value uint64, bits int) int64 {
	shift := 64 - bits
	return int64(value<<shift) >> shift
}

// Implements a read/write view over an unsigned interger, allowing manipullating individual bits easily
type BitView[T constraints.Unsigned] struct {
	Bits *T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return *v.Bits
}

// Extracts a range of bits given a first bit and a width
func (v BitView[T]) Read(bit int, width int) T {
	mask := AllOnes[T](width)
	return (v.Value() >> bit) & mask
}

// Copies a value into a range of bits, given the start and width of the range.
// All most significant bits of the value not fitting into the destination range are ignored.
// Previous contents of the range are overwritten.
func (v BitView[T]) Write(value T, bit int, width int) {
	mask := AllOnes[T](width)
	*v.Bits = (*v.Bits &^ (mask << bit)) | ((value & mask) << bit)
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value *T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
