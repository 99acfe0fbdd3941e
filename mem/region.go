// Package mem provides the byte regions that back a guest heap.
//
// A Region is a fixed-size mutable byte buffer. The small default is a
// plain Go-heap slice; large guest heaps can instead live in an anonymous
// memory mapping so multi-MiB regions stay off the Go heap.
package mem

// Region is a fixed-size mutable byte region. Whoever constructs a Region
// owns it until ownership is handed over (the allocator takes ownership of
// its backing region for its lifetime). Close releases any OS resources
// behind the region; Bytes must not be used afterwards.
type Region interface {
	// Bytes returns the full backing slice. The slice stays valid until
	// Close; implementations never reallocate it.
	Bytes() []byte

	// Size returns the region length in bytes.
	Size() int

	// Close releases the region. Closing twice is a no-op.
	Close() error
}

// ByteRegion is a Region backed by a zeroed Go-heap slice.
type ByteRegion struct {
	data []byte
}

// NewByteRegion returns a zeroed region of the given size.
func NewByteRegion(size int) *ByteRegion {
	return &ByteRegion{data: make([]byte, size)}
}

// Bytes returns the backing slice.
func (r *ByteRegion) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r *ByteRegion) Size() int { return len(r.data) }

// Close drops the backing slice. Closing twice is a no-op.
func (r *ByteRegion) Close() error {
	r.data = nil
	return nil
}

// Compile-time interface check
var _ Region = (*ByteRegion)(nil)
