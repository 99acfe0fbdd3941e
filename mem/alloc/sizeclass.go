package alloc

import (
	"math/bits"

	"github.com/jpetersen/guestheap/internal/format"
)

const (
	// NumClasses is the number of power-of-two size classes.
	NumClasses = format.NumClasses

	// MaxAllocation is the largest payload a single allocation may have.
	MaxAllocation = format.MaxAllocation
)

// ItemSizeForClass returns the payload capacity of a size class.
// We shift 1 by three places since the first possible item size is 8.
func ItemSizeForClass(index int) uint32 {
	return 1 << 3 << index
}

// classForItemSize returns the free-list index for itemSize, which must be
// a power of two between MinItemSize and MaxAllocation.
func classForItemSize(itemSize uint32) int {
	return bits.TrailingZeros32(itemSize) - 3
}

// nextPowTwoMin8 rounds size up to the next power of two, with a floor of
// MinItemSize so every block can hold a free-list link.
func nextPowTwoMin8(size uint32) uint32 {
	if size < format.MinItemSize {
		return format.MinItemSize
	}
	size--
	size |= size >> 1
	size |= size >> 2
	size |= size >> 4
	size |= size >> 8
	size |= size >> 16
	size++
	return size
}
