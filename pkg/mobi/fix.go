package mobi

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joshuapare/mobikit/internal/config"
	"github.com/joshuapare/mobikit/internal/mmfile"
	"github.com/joshuapare/mobikit/internal/outfile"
)

// FixFile patches the ebook at input and writes the result to output. An
// empty output replaces input. The destination is only touched once the
// patched data is complete; on any error it keeps its previous contents.
func FixFile(input, output string, opts *FixOptions) (*FixResult, error) {
	if opts == nil {
		opts = &FixOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if err := CheckExtension(input, opts.Extensions); err != nil {
		return nil, err
	}
	if output == "" {
		output = input
	}

	id := ResolveIdentifier(opts.Identifier)
	if id == "" {
		id = GenerateIdentifier(opts.IdentifierLength)
		log.Debug("generated identifier", "identifier", id)
	}

	res, err := patchFile(input, id, &opts.PatchOptions)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", input, err)
	}

	if err := outfile.Write(output, res.Data, &outfile.Options{
		Backup:   opts.Backup,
		FullSync: opts.FullSync,
	}); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	log.Debug("wrote patched ebook",
		"input", input, "output", output, "combo", res.Combo, "kf8_section", res.KF8Section)

	return &FixResult{
		Input:      input,
		Output:     output,
		Identifier: id,
		Version:    res.Version,
		Combo:      res.Combo,
		KF8Section: res.KF8Section,
		Size:       len(res.Data),
	}, nil
}

// patchFile maps input only for the duration of the patch; the result owns
// its data so the mapping can be released before output replaces input.
func patchFile(input, id string, opts *PatchOptions) (*Result, error) {
	m, err := mmfile.Open(input)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	return PatchBytes(data, id, opts)
}

// CheckExtension returns ErrUnsupportedExtension unless path ends in one of
// allowed (case-insensitive). A nil allowed uses the built-in list.
func CheckExtension(path string, allowed []string) error {
	if len(allowed) == 0 {
		allowed = config.DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || !slices.Contains(allowed, ext) {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
	}
	return nil
}
