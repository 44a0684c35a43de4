package exth

import (
	"errors"
	"fmt"
	"math"

	"github.com/joshuapare/mobikit/internal/buf"
	"github.com/joshuapare/mobikit/internal/format"
)

// Geometry locates the EXTH block inside a header section.
type Geometry struct {
	Base           int // offset of the "EXTH" tag
	DeclaredLength uint32
	RecordCount    uint32
}

// Record is a view of one EXTH record. Payload aliases the section and is
// only valid until the next mutation.
type Record struct {
	Type    uint32
	Offset  int // offset of the record header within the section
	Length  int // declared length, header included
	Payload []byte
}

// Header is an owned, fixed-length copy of a MOBI header section.
type Header struct {
	f *buf.Fixed
}

// NewHeader copies sec.
func NewHeader(sec []byte) *Header {
	return &Header{f: buf.NewFixed(sec)}
}

// Bytes returns the current section contents.
func (h *Header) Bytes() []byte { return h.f.Bytes() }

// Len returns the section length, which never changes.
func (h *Header) Len() int { return h.f.Len() }

// Version returns the MOBI format version field.
func (h *Header) Version() (uint32, error) {
	v, err := h.f.U32(format.MOBIVersionOffset)
	if err != nil {
		return 0, fmt.Errorf("mobi version: %w: %v", format.ErrTruncated, err)
	}
	return v, nil
}

// TitleOffset returns the full name offset field.
func (h *Header) TitleOffset() (uint32, error) {
	v, err := h.f.U32(format.MOBIFullNameOffset)
	if err != nil {
		return 0, fmt.Errorf("title offset: %w: %v", format.ErrTruncated, err)
	}
	return v, nil
}

// Geometry parses the EXTH prologue.
func (h *Header) Geometry() (Geometry, error) {
	hl, err := h.f.U32(format.MOBIHeaderLengthOffset)
	if err != nil {
		return Geometry{}, fmt.Errorf("mobi header length: %w: %v", format.ErrTruncated, err)
	}
	base, ok := buf.AddOverflowSafe(format.MOBIHeaderBase, int(hl))
	if !ok || !h.f.HasPrefixAt(base, format.EXTHSignature) {
		return Geometry{}, fmt.Errorf("EXTH tag not found where expected (offset %d): %w", base, format.ErrFormat)
	}
	elen, err := h.f.U32(base + format.EXTHLengthOffset)
	if err != nil {
		return Geometry{}, fmt.Errorf("exth length: %w: %v", format.ErrTruncated, err)
	}
	enum, err := h.f.U32(base + format.EXTHCountOffset)
	if err != nil {
		return Geometry{}, fmt.Errorf("exth count: %w: %v", format.ErrTruncated, err)
	}
	return Geometry{Base: base, DeclaredLength: elen, RecordCount: enum}, nil
}

// walk visits every record and returns the geometry and the offset just past
// the last record.
func (h *Header) walk(visit func(Record) bool) (Geometry, int, error) {
	g, err := h.Geometry()
	if err != nil {
		return Geometry{}, 0, err
	}
	off := g.Base + format.EXTHPrologueSize
	for i := uint32(0); i < g.RecordCount; i++ {
		typ, err := h.f.U32(off)
		if err != nil {
			return Geometry{}, 0, fmt.Errorf("exth record %d: %w: %v", i, format.ErrTruncated, err)
		}
		rlen, err := h.f.U32(off + 4)
		if err != nil {
			return Geometry{}, 0, fmt.Errorf("exth record %d: %w: %v", i, format.ErrTruncated, err)
		}
		if rlen < format.EXTHRecordHeaderSize {
			return Geometry{}, 0, fmt.Errorf("exth record %d: declared length %d: %w", i, rlen, format.ErrFormat)
		}
		payload, err := h.f.Range(off+format.EXTHRecordHeaderSize, int(rlen)-format.EXTHRecordHeaderSize)
		if err != nil {
			return Geometry{}, 0, fmt.Errorf("exth record %d: %w: %v", i, format.ErrTruncated, err)
		}
		if visit != nil && !visit(Record{Type: typ, Offset: off, Length: int(rlen), Payload: payload}) {
			return g, off, nil
		}
		off += int(rlen)
	}
	return g, off, nil
}

// Records returns every record in walk order.
func (h *Header) Records() ([]Record, error) {
	var out []Record
	if _, _, err := h.walk(func(r Record) bool {
		out = append(out, r)
		return true
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Find returns the payloads of all records of type typ in walk order.
func (h *Header) Find(typ uint32) ([][]byte, error) {
	var out [][]byte
	if _, _, err := h.walk(func(r Record) bool {
		if r.Type == typ {
			out = append(out, r.Payload)
		}
		return true
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Add appends a record after the last one. The section gives up
// 8+len(payload) bytes of zero tail to stay the same length.
func (h *Header) Add(typ uint32, payload []byte) error {
	if uint64(len(payload)) > math.MaxUint32-format.EXTHRecordHeaderSize {
		return fmt.Errorf("exth record payload too large: %d bytes", len(payload))
	}
	g, end, err := h.walk(nil)
	if err != nil {
		return err
	}
	if _, err := h.TitleOffset(); err != nil {
		return err
	}
	size := format.EXTHRecordHeaderSize + len(payload)
	rec := make([]byte, 0, size)
	rec = buf.AppendU32BE(rec, typ)
	rec = buf.AppendU32BE(rec, uint32(size))
	rec = append(rec, payload...)

	if err := h.f.InsertTrim(end, rec); err != nil {
		switch {
		case errors.Is(err, buf.ErrNonZeroTail), errors.Is(err, buf.ErrOutOfBounds):
			return fmt.Errorf("add exth %d: %w: %v", typ, format.ErrPaddingViolation, err)
		case errors.Is(err, buf.ErrLengthChanged):
			return fmt.Errorf("add exth %d: %w: %v", typ, format.ErrSizeInvariant, err)
		}
		return err
	}
	return h.shift(g, size, 1)
}

// Delete removes the first record of type typ, if any, and reports whether
// one was removed. Later duplicates stay in place.
func (h *Header) Delete(typ uint32) (bool, error) {
	var hit *Record
	g, _, err := h.walk(func(r Record) bool {
		if r.Type == typ {
			hit = &r
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	if hit == nil {
		return false, nil
	}
	if _, err := h.TitleOffset(); err != nil {
		return false, err
	}
	if err := h.f.RemovePad(hit.Offset, hit.Length); err != nil {
		if errors.Is(err, buf.ErrLengthChanged) {
			return false, fmt.Errorf("del exth %d: %w: %v", typ, format.ErrSizeInvariant, err)
		}
		return false, err
	}
	return true, h.shift(g, -hit.Length, -1)
}

// shift updates the declared length, record count and title offset after
// size bytes were inserted (positive) or removed (negative).
func (h *Header) shift(g Geometry, size, count int) error {
	if err := h.f.PutU32(g.Base+format.EXTHLengthOffset, uint32(int64(g.DeclaredLength)+int64(size))); err != nil {
		return err
	}
	if err := h.f.PutU32(g.Base+format.EXTHCountOffset, uint32(int64(g.RecordCount)+int64(count))); err != nil {
		return err
	}
	return h.f.AdjustU32(format.MOBIFullNameOffset, size)
}

// ParseGeometry locates the EXTH block in header.
func ParseGeometry(header []byte) (Geometry, error) {
	return NewHeader(header).Geometry()
}

// ReadRecords returns the payloads of all records of type typ, in order.
// The payloads are copies.
func ReadRecords(header []byte, typ uint32) ([][]byte, error) {
	return NewHeader(header).Find(typ)
}

// Records returns every record of header, in order.
func Records(header []byte) ([]Record, error) {
	return NewHeader(header).Records()
}

// AddRecord returns a copy of header with a new record appended.
func AddRecord(header []byte, typ uint32, payload []byte) ([]byte, error) {
	h := NewHeader(header)
	if err := h.Add(typ, payload); err != nil {
		return nil, err
	}
	return h.Bytes(), nil
}

// DeleteRecord returns a copy of header without the first record of type
// typ. The copy equals header when no record matches.
func DeleteRecord(header []byte, typ uint32) ([]byte, error) {
	h := NewHeader(header)
	if _, err := h.Delete(typ); err != nil {
		return nil, err
	}
	return h.Bytes(), nil
}
