package buf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an access outside the view.
	ErrOutOfBounds = errors.New("buf: range out of bounds")
	// ErrNonZeroTail indicates an insert would have trimmed non-zero bytes.
	ErrNonZeroTail = errors.New("buf: trimmed tail is not zero")
	// ErrLengthChanged indicates a mutation altered the view length.
	ErrLengthChanged = errors.New("buf: length changed")
)

// Fixed is an owned byte buffer whose length never changes. Inserts give
// back the same number of bytes from the tail (which must be zero) and
// removals refill the tail with zeros, so every mutation is checked against
// the length recorded at construction.
type Fixed struct {
	b []byte
	n int
}

// NewFixed copies src into a new fixed-length view.
func NewFixed(src []byte) *Fixed {
	b := bytes.Clone(src)
	if b == nil {
		b = []byte{}
	}
	return &Fixed{b: b, n: len(b)}
}

// Len returns the fixed length.
func (f *Fixed) Len() int { return f.n }

// Bytes returns the backing buffer. The caller must not resize it.
func (f *Fixed) Bytes() []byte { return f.b }

// Range returns b[off:off+n] without copying.
func (f *Fixed) Range(off, n int) ([]byte, error) {
	s, ok := Slice(f.b, off, n)
	if !ok {
		return nil, fmt.Errorf("%w: [%d:+%d] len=%d", ErrOutOfBounds, off, n, f.n)
	}
	return s, nil
}

// HasPrefixAt reports whether want occurs at off.
func (f *Fixed) HasPrefixAt(off int, want []byte) bool {
	s, ok := Slice(f.b, off, len(want))
	return ok && bytes.Equal(s, want)
}

// U32 reads a big-endian uint32 at off.
func (f *Fixed) U32(off int) (uint32, error) {
	s, err := f.Range(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(s), nil
}

// PutU32 writes a big-endian uint32 at off.
func (f *Fixed) PutU32(off int, v uint32) error {
	s, err := f.Range(off, 4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(s, v)
	return nil
}

// AdjustU32 adds delta to the big-endian uint32 at off. The result wraps
// modulo 2^32 like the on-disk field would.
func (f *Fixed) AdjustU32(off int, delta int) error {
	v, err := f.U32(off)
	if err != nil {
		return err
	}
	return f.PutU32(off, uint32(int64(v)+int64(delta)))
}

// InsertTrim inserts p at off and drops len(p) bytes from the end. The
// dropped bytes must all be zero; otherwise nothing is modified.
func (f *Fixed) InsertTrim(off int, p []byte) error {
	k := len(p)
	if off < 0 || k > f.n || off > f.n-k {
		return fmt.Errorf("%w: insert %d bytes at %d len=%d", ErrOutOfBounds, k, off, f.n)
	}
	if !allZero(f.b[f.n-k:]) {
		return fmt.Errorf("%w: %d bytes", ErrNonZeroTail, k)
	}
	copy(f.b[off+k:], f.b[off:f.n-k])
	copy(f.b[off:], p)
	return f.check()
}

// RemovePad removes k bytes at off and zero-fills the freed tail.
func (f *Fixed) RemovePad(off, k int) error {
	if !Has(f.b, off, k) {
		return fmt.Errorf("%w: remove %d bytes at %d len=%d", ErrOutOfBounds, k, off, f.n)
	}
	copy(f.b[off:], f.b[off+k:])
	clear(f.b[f.n-k:])
	return f.check()
}

func (f *Fixed) check() error {
	if len(f.b) != f.n {
		return fmt.Errorf("%w: have %d want %d", ErrLengthChanged, len(f.b), f.n)
	}
	return nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
