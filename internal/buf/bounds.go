package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckListBounds validates that count fixed-size entries starting at offset
// fit in a buffer of bufLen bytes and returns the end offset. The PalmDB
// section directory is validated this way before any entry is decoded:
//
//	end, err := buf.CheckListBounds(len(data), format.PDBDirectoryOffset, n, format.PDBEntrySize)
func CheckListBounds(bufLen, offset, count, entrySize int) (int, error) {
	if offset < 0 || count < 0 || entrySize < 0 {
		return 0, fmt.Errorf("negative list geometry: off=%d count=%d size=%d", offset, count, entrySize)
	}
	if entrySize != 0 && count > math.MaxInt/entrySize {
		return 0, fmt.Errorf("overflow: count=%d * size=%d", count, entrySize)
	}
	end, ok := AddOverflowSafe(offset, count*entrySize)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, count*entrySize)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
