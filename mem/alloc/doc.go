// Package alloc provides handle allocation over a fixed-size guest memory
// region using a freeing-bump strategy.
//
// # Overview
//
// This package sub-allocates a contiguous, host-owned byte region on behalf
// of a guest execution environment. Callers receive small integer handles
// (offsets into the region, shifted by a caller-chosen origin) instead of
// machine pointers. Allocation layers per-size-class LIFO free lists on top
// of a monotonic bump cursor, giving O(1) allocation and deallocation with
// no searching and no coalescing.
//
// # Block Layout
//
// Every allocation reserves itemSize+8 bytes, where itemSize is the
// smallest power of two covering the request (minimum 8, maximum 16 MiB).
// A block starting at internal offset h looks like:
//
//	[h]        size-class index (one byte)
//	[h+1..h+8) 0xFF sentinel bytes while the block is live
//	[h+8..)    payload; the returned handle addresses this byte
//
// When a block is freed, the first four header bytes are reused as the
// little-endian offset of the next block in its class list. The sentinel
// is re-validated on deallocation, so a stale or corrupted header is
// caught before it can poison a free list.
//
// # Size Classes
//
// The allocator maintains 22 segregated free lists, one per power-of-two
// payload capacity:
//
//	Class  0:        8 bytes
//	Class  1:       16 bytes
//	Class  2:       32 bytes
//	...
//	Class 21: 16777216 bytes (16 MiB, the per-allocation cap)
//
// Reuse within a class is LIFO: the most recently freed block is handed
// out first, so an allocate/free/allocate round trip of one size returns
// the same handle.
//
// # Handles
//
// Handles are 32-bit values in a caller-chosen coordinate system: the
// origin passed at construction is rounded up to a multiple of 8 and added
// to every result. Handle 0 is never valid and denotes allocation failure,
// since the smallest possible result is origin+8. Every handle is 8-byte
// aligned relative to the origin.
//
// # Failure Modes
//
// Capacity exhaustion is recoverable: Allocate returns handle 0 together
// with ErrSizeTooLarge or ErrOutOfSpace, and the caller may free other
// handles and retry. Contract violations — double allocate, double free,
// sentinel corruption, a broken free list — are memory-safety bugs in the
// layer above; they are logged at crit level and raised as panics carrying
// the offending offset, never returned as errors.
//
// # Thread Safety
//
// Instances are not thread-safe and are meant for a single owner. Distinct
// instances share no state and may be driven from different goroutines.
//
// # Related Packages
//
//   - github.com/jpetersen/guestheap/mem: backing byte regions
//   - github.com/jpetersen/guestheap/internal/format: block layout constants
package alloc
