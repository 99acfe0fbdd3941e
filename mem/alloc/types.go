package alloc

// Handle is a 32-bit offset in the caller's handle space identifying a
// live allocation. Handle 0 is never valid and denotes allocation failure.
type Handle = uint32

// Allocator hands out and reclaims handles over a fixed-size byte region.
//
// Implementations:
//   - FreeingBumpAllocator: bump cursor plus per-size-class LIFO free lists
//
// The interface exists so consumers of guest memory (runtimes, host call
// layers) can be exercised against alternative strategies.
type Allocator interface {
	// Allocate reserves space for size bytes and returns the handle of the
	// payload. On capacity exhaustion it returns handle 0 and a sentinel
	// error; the caller may free other handles and retry.
	Allocate(size uint32) (Handle, error)

	// Deallocate releases a handle previously returned by Allocate on the
	// same instance. Passing anything else is a contract violation and
	// aborts.
	Deallocate(handle Handle)

	// TotalSize returns the number of live bytes, headers included.
	TotalSize() uint32

	// Close releases the backing region.
	Close() error
}
