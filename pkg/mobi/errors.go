package mobi

import (
	"errors"

	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/mobi/dualmeta"
)

// Structural errors, shared with the lower level packages.
var (
	ErrFormat           = format.ErrFormat
	ErrTruncated        = format.ErrTruncated
	ErrRange            = format.ErrRange
	ErrLengthMismatch   = format.ErrLengthMismatch
	ErrPaddingViolation = format.ErrPaddingViolation
	ErrSizeInvariant    = format.ErrSizeInvariant
	ErrEmptyIdentifier  = dualmeta.ErrEmptyIdentifier
)

// ErrUnsupportedExtension indicates the input is not named like a Kindle
// container.
var ErrUnsupportedExtension = errors.New("mobi: not a Kindle/Mobipocket ebook extension")
