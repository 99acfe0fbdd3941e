// Package format houses the low-level block layout used by the guest heap.
// The goal is to keep the byte-level concerns (header shape, alignment,
// integer encoding) focused and independent from the allocator itself so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

const (
	// HeaderSize is the number of bytes reserved immediately before every
	// payload. Layout of a block starting at offset h:
	//   [h]        size-class index (one byte)
	//   [h+1..h+8) sentinel bytes, all 0xFF, while the block is live
	// While the block sits on a free list the first four bytes hold the
	// little-endian offset of the next free block instead.
	HeaderSize = 8

	// LinkSize is the width of a free-list link stored at the start of a
	// freed block's header.
	LinkSize = 4

	// SentinelByte fills the seven header bytes after the class index on
	// live blocks. It doubles as a corruption canary: it distinguishes a
	// live header from a free-list node, whose first bytes hold a link.
	SentinelByte = 0xFF

	// SentinelLen is the number of sentinel bytes in a live header.
	SentinelLen = HeaderSize - 1

	// Alignment is the required alignment of handles and of the handle
	// space origin. Every returned handle is a multiple of 8 away from
	// the (aligned) origin.
	Alignment = 8

	// AlignmentMask is used for mask-based rounding to Alignment.
	AlignmentMask = Alignment - 1

	// MinItemSize is the smallest payload capacity a block can have.
	// Requests below it are rounded up, so a zero-size request still
	// yields a usable block.
	MinItemSize = 8

	// MaxAllocation is the largest payload capacity a single allocation
	// may have: 16 MiB.
	MaxAllocation = 1 << 24

	// NumClasses is the number of power-of-two size classes, covering
	// payload capacities from MinItemSize through MaxAllocation.
	NumClasses = 22
)
