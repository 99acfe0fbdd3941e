package alloc

import "errors"

var (
	// ErrSizeTooLarge indicates a request above the 16 MiB per-allocation cap.
	ErrSizeTooLarge = errors.New("alloc: requested size exceeds maximum allocation")

	// ErrOutOfSpace indicates that the request plus the live set would exceed
	// the heap capacity.
	ErrOutOfSpace = errors.New("alloc: heap out of space")

	// ErrNilRegion indicates a missing backing region.
	ErrNilRegion = errors.New("alloc: nil backing region")

	// ErrRegionTooLarge indicates a backing region that does not fit the
	// 32-bit handle space.
	ErrRegionTooLarge = errors.New("alloc: region exceeds 32-bit addressable size")
)
