// Package exth reads and rewrites the EXTH metadata block of a MOBI header
// section without changing the section's length.
//
// # Geometry
//
// The block starts at 16 + the MOBI header length field. Its 12 byte
// prologue holds the "EXTH" tag, the declared block length and the record
// count. Records follow back to back, each carrying its type, its total
// length (header included) and its payload. Zero bytes fill the section
// after the title that follows the block.
//
// # Editing
//
// AddRecord appends after the last record and gives back the same number
// of bytes from the zero tail; DeleteRecord removes the first matching record
// and zero-fills the tail. Both keep the declared length, the record count
// and the title offset field (offset 84) consistent with the move.
//
//	sec, err = exth.DeleteRecord(sec, format.EXTHTypeCDEType)
//	sec, err = exth.AddRecord(sec, format.EXTHTypeCDEType, []byte("EBOK"))
//
// The package functions return new buffers. Header exposes the same
// operations as methods over one owned copy, which is what the patcher uses.
//
// # Errors
//
//   - format.ErrFormat: no EXTH tag at the computed offset, or a record
//     declaring less than its own header
//   - format.ErrTruncated: the prologue or a record runs past the section
//   - format.ErrPaddingViolation: an insert would trim non-zero bytes
//   - format.ErrSizeInvariant: a removal changed the section length
package exth
