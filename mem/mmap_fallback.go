//go:build !unix && !windows

package mem

import "fmt"

// AnonRegion falls back to a plain slice on platforms without a usable
// anonymous mapping primitive. Semantics match the mapped variants.
type AnonRegion struct {
	data []byte
}

// NewAnonRegion returns a zeroed region of the given size.
func NewAnonRegion(size int) (*AnonRegion, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: invalid region size %d", size)
	}
	return &AnonRegion{data: make([]byte, size)}, nil
}

// Bytes returns the backing slice.
func (r *AnonRegion) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r *AnonRegion) Size() int { return len(r.data) }

// Close drops the backing slice. Closing twice is a no-op.
func (r *AnonRegion) Close() error {
	r.data = nil
	return nil
}

// Compile-time interface check
var _ Region = (*AnonRegion)(nil)
