//go:build unix

package mem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// AnonRegion is a Region backed by an anonymous private mapping. The pages
// are zeroed by the kernel and never touch the Go heap.
type AnonRegion struct {
	data []byte
}

// NewAnonRegion maps size bytes of anonymous memory.
func NewAnonRegion(size int) (*AnonRegion, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: invalid region size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mem: anonymous mmap of %d bytes: %w", size, err)
	}
	return &AnonRegion{data: data}, nil
}

// Bytes returns the mapped slice.
func (r *AnonRegion) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r *AnonRegion) Size() int { return len(r.data) }

// Close unmaps the region. Closing twice is a no-op.
func (r *AnonRegion) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	return unix.Munmap(data)
}

// Compile-time interface check
var _ Region = (*AnonRegion)(nil)
