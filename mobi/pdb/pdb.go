package pdb

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/mobikit/internal/format"
)

// Locate returns the byte range [start, end) of section index.
func Locate(data []byte, index int) (int, int, error) {
	h, err := format.ParsePDBHeader(data)
	if err != nil {
		return 0, 0, err
	}
	return locate(data, h.NumSections, index)
}

func locate(data []byte, nsec, index int) (int, int, error) {
	if index < 0 || index >= nsec {
		return 0, 0, fmt.Errorf("%w: requested section %d (nsec=%d)", format.ErrRange, index, nsec)
	}
	start := int(format.SectionStart(data, index))
	end := len(data)
	if index < nsec-1 {
		end = int(format.SectionStart(data, index+1))
	}
	if start > end || end > len(data) {
		return 0, 0, fmt.Errorf("section %d [%d:%d] len=%d: %w", index, start, end, len(data), format.ErrTruncated)
	}
	return start, end, nil
}

// Read returns section index as a sub-slice of data.
func Read(data []byte, index int) ([]byte, error) {
	start, end, err := Locate(data, index)
	if err != nil {
		return nil, err
	}
	return data[start:end], nil
}

// Replace returns a copy of data with section index overwritten by sec.
func Replace(data []byte, index int, sec []byte) ([]byte, error) {
	start, end, err := Locate(data, index)
	if err != nil {
		return nil, err
	}
	if len(sec) != end-start {
		return nil, fmt.Errorf("%w: section %d is %d bytes, replacement is %d",
			format.ErrLengthMismatch, index, end-start, len(sec))
	}
	out := bytes.Clone(data)
	copy(out[start:end], sec)
	return out, nil
}
