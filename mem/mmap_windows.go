//go:build windows

package mem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// AnonRegion is a Region backed by a pagefile-backed file mapping.
// Mapping on Windows is a two-step process: CreateFileMapping yields a
// handle, MapViewOfFile turns it into an address.
type AnonRegion struct {
	data   []byte
	handle windows.Handle
}

// NewAnonRegion maps size bytes of anonymous memory.
func NewAnonRegion(size int) (*AnonRegion, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: invalid region size %d", size)
	}
	maxSizeHigh := uint32(uint64(size) >> 32)
	maxSizeLow := uint32(uint64(size) & 0xFFFFFFFF)
	h, err := windows.CreateFileMapping(windows.InvalidHandle, nil,
		windows.PAGE_READWRITE, maxSizeHigh, maxSizeLow, nil)
	if err != nil {
		return nil, fmt.Errorf("mem: CreateFileMapping of %d bytes: %w", size, err)
	}
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("mem: MapViewOfFile of %d bytes: %w", size, err)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &AnonRegion{data: data, handle: h}, nil
}

// Bytes returns the mapped slice.
func (r *AnonRegion) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r *AnonRegion) Size() int { return len(r.data) }

// Close unmaps the view and releases the mapping handle. Closing twice is
// a no-op.
func (r *AnonRegion) Close() error {
	if r.data == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&r.data[0]))
	r.data = nil
	if err := windows.UnmapViewOfFile(addr); err != nil {
		windows.CloseHandle(r.handle)
		return err
	}
	return windows.CloseHandle(r.handle)
}

// Compile-time interface check
var _ Region = (*AnonRegion)(nil)
