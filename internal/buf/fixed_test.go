package buf

import (
	"bytes"
	"errors"
	"testing"
)

func TestFixedInsertTrim(t *testing.T) {
	src := []byte{1, 2, 3, 4, 0, 0, 0}
	f := NewFixed(src)

	if err := f.InsertTrim(2, []byte{9, 9}); err != nil {
		t.Fatalf("InsertTrim: %v", err)
	}
	want := []byte{1, 2, 9, 9, 3, 4, 0}
	if !bytes.Equal(f.Bytes(), want) {
		t.Fatalf("InsertTrim result = %v, want %v", f.Bytes(), want)
	}
	if f.Len() != len(src) {
		t.Fatalf("Len = %d, want %d", f.Len(), len(src))
	}
	if !bytes.Equal(src, []byte{1, 2, 3, 4, 0, 0, 0}) {
		t.Fatalf("source buffer was modified: %v", src)
	}
}

func TestFixedInsertTrimNonZeroTail(t *testing.T) {
	f := NewFixed([]byte{1, 2, 3, 0, 7})
	err := f.InsertTrim(1, []byte{9, 9})
	if !errors.Is(err, ErrNonZeroTail) {
		t.Fatalf("expected ErrNonZeroTail, got %v", err)
	}
	if !bytes.Equal(f.Bytes(), []byte{1, 2, 3, 0, 7}) {
		t.Fatalf("buffer changed on failed insert: %v", f.Bytes())
	}
}

func TestFixedInsertTrimBounds(t *testing.T) {
	f := NewFixed([]byte{0, 0, 0, 0})
	for _, off := range []int{-1, 3, 5} {
		if err := f.InsertTrim(off, []byte{1, 2}); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("InsertTrim(%d): expected ErrOutOfBounds, got %v", off, err)
		}
	}
	if err := f.InsertTrim(0, make([]byte, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("oversized insert: expected ErrOutOfBounds, got %v", err)
	}
}

func TestFixedRemovePad(t *testing.T) {
	f := NewFixed([]byte{1, 2, 9, 9, 3, 4, 0})
	if err := f.RemovePad(2, 2); err != nil {
		t.Fatalf("RemovePad: %v", err)
	}
	want := []byte{1, 2, 3, 4, 0, 0, 0}
	if !bytes.Equal(f.Bytes(), want) {
		t.Fatalf("RemovePad result = %v, want %v", f.Bytes(), want)
	}
	if err := f.RemovePad(6, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestFixedInsertRemoveRoundTrip(t *testing.T) {
	src := []byte{'E', 'X', 'T', 'H', 5, 6, 7, 0, 0, 0, 0}
	f := NewFixed(src)
	if err := f.InsertTrim(4, []byte{0xaa, 0xbb, 0xcc}); err != nil {
		t.Fatalf("InsertTrim: %v", err)
	}
	if err := f.RemovePad(4, 3); err != nil {
		t.Fatalf("RemovePad: %v", err)
	}
	if !bytes.Equal(f.Bytes(), src) {
		t.Fatalf("round trip = %v, want %v", f.Bytes(), src)
	}
}

func TestFixedU32(t *testing.T) {
	f := NewFixed(make([]byte, 8))
	if err := f.PutU32(4, 100); err != nil {
		t.Fatalf("PutU32: %v", err)
	}
	if err := f.AdjustU32(4, 20); err != nil {
		t.Fatalf("AdjustU32: %v", err)
	}
	if err := f.AdjustU32(4, -30); err != nil {
		t.Fatalf("AdjustU32: %v", err)
	}
	if v, err := f.U32(4); err != nil || v != 90 {
		t.Fatalf("U32 = %d, %v; want 90", v, err)
	}
	if _, err := f.U32(5); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := f.PutU32(6, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if !f.HasPrefixAt(4, []byte{0, 0, 0, 90}) {
		t.Fatalf("HasPrefixAt mismatch: %v", f.Bytes())
	}
	if f.HasPrefixAt(6, []byte{0, 0, 0}) {
		t.Fatalf("HasPrefixAt should fail past the end")
	}
}
