package mobi

import (
	"fmt"

	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/mobi/dualmeta"
)

// ValidateIdent checks that data is a PalmDB container with a complete
// section directory and the BOOKMOBI ident. Other PalmDB types (TEXtREAd,
// ...) are rejected with ErrFormat.
func ValidateIdent(data []byte) error {
	h, err := format.ParsePDBHeader(data)
	if err != nil {
		return err
	}
	if !h.IsBookMobi() {
		return fmt.Errorf("palmdb ident %q: %w", h.Ident[:], ErrFormat)
	}
	return nil
}

// PatchBytes stamps identifier and the content type marker into data and
// returns a new buffer of the same length. data is not modified.
func PatchBytes(data []byte, identifier string, opts *PatchOptions) (*Result, error) {
	if opts == nil {
		opts = &PatchOptions{}
	}
	if err := ValidateIdent(data); err != nil {
		return nil, err
	}
	dopts := &dualmeta.Options{Logger: opts.Logger}
	if opts.Marker != "" {
		dopts.Marker = []byte(opts.Marker)
	}
	return dualmeta.Patch(data, ResolveIdentifier(identifier), dopts)
}
