package format

import "encoding/binary"

// Big-endian accessors. Callers bounds-check first; these panic on short
// buffers like the slice expressions they wrap.

// ReadU16 reads a big-endian uint16 at off.
func ReadU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a big-endian uint32 at off.
func ReadU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}
