package format

import "encoding/binary"

// Binary encoding utilities for little-endian integers.
//
// Free-list links are stored little-endian regardless of host byte order,
// because the backing region is shared with a guest sandbox that observes
// little-endian semantics. Byte-order conversion is therefore always
// explicit; nothing here relies on host layout.
//
// Implementation: encoding/binary.LittleEndian. Modern Go compilers inline
// and optimize these calls well, so no unsafe variants are needed.

// PutU32 writes a uint32 value to the buffer at the specified offset in
// little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in
// little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}
