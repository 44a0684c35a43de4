package format

import "errors"

var (
	// ErrFormat indicates an expected signature or tag was absent.
	ErrFormat = errors.New("format: unexpected signature")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrRange indicates a section index outside the directory.
	ErrRange = errors.New("format: section index out of range")
	// ErrLengthMismatch indicates a section replacement would resize the container.
	ErrLengthMismatch = errors.New("format: section length mismatch")
	// ErrPaddingViolation indicates an EXTH insert would trim non-zero bytes.
	ErrPaddingViolation = errors.New("format: trimmed non-zero bytes at end of section")
	// ErrSizeInvariant indicates a header section changed length after an edit.
	ErrSizeInvariant = errors.New("format: incorrect section size change")
)
