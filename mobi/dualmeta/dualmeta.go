package dualmeta

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/mobikit/internal/buf"
	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/mobi/exth"
	"github.com/joshuapare/mobikit/mobi/pdb"
)

// ErrEmptyIdentifier indicates Patch was called without an identifier.
var ErrEmptyIdentifier = errors.New("dualmeta: empty identifier")

// NoKF8Section is Result.KF8Section when no second header was patched.
const NoKF8Section = -1

// managedTypes are deleted from each header, in this order, before the
// new records are added.
var managedTypes = []uint32{
	format.EXTHTypeCDEType,
	format.EXTHTypeASIN,
	format.EXTHTypeASIN2,
}

// Insertion orders. They differ between the two headers; readers do not
// depend on record order.
var (
	primaryOrder   = []uint32{format.EXTHTypeASIN, format.EXTHTypeASIN2, format.EXTHTypeCDEType}
	secondaryOrder = []uint32{format.EXTHTypeASIN2, format.EXTHTypeASIN, format.EXTHTypeCDEType}
)

// Options configures a patch session. A nil *Options uses the defaults.
type Options struct {
	// Marker is the EXTH 501 payload.
	// Default: "EBOK"
	Marker []byte

	// Logger receives debug events. Default: discard.
	Logger *slog.Logger
}

// Result is the outcome of a successful patch.
type Result struct {
	// Data is the patched container, the same length as the input.
	Data []byte

	// Version is the MOBI version of the original primary header.
	Version uint32

	// Combo reports whether a second (KF8) header was found and patched.
	Combo bool

	// KF8Section is the section index of the second header, or NoKF8Section.
	KF8Section int
}

// Session patches one container. It is not safe for concurrent use.
type Session struct {
	data   []byte
	nsec   int
	id     []byte
	marker []byte
	log    *slog.Logger

	version uint32
	combo   bool
	kf8     int
	done    bool
}

// NewSession prepares to stamp identifier into data. data is never
// written to; every section replacement produces a new buffer.
func NewSession(data []byte, identifier string, opts *Options) (*Session, error) {
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}
	h, err := format.ParsePDBHeader(data)
	if err != nil {
		return nil, err
	}
	s := &Session{
		data:   data,
		nsec:   h.NumSections,
		id:     []byte(identifier),
		marker: format.CDETypeEBOK,
		log:    slog.New(slog.DiscardHandler),
		kf8:    NoKF8Section,
	}
	if opts != nil {
		if len(opts.Marker) > 0 {
			s.marker = bytes.Clone(opts.Marker)
		}
		if opts.Logger != nil {
			s.log = opts.Logger
		}
	}
	return s, nil
}

// Run patches the primary header and, for combo files, the KF8 header.
// A session runs once.
func (s *Session) Run() (*Result, error) {
	if s.done {
		return nil, errors.New("dualmeta: session already run")
	}
	s.done = true

	sec, err := pdb.Read(s.data, 0)
	if err != nil {
		return nil, fmt.Errorf("read primary header: %w", err)
	}
	orig := exth.NewHeader(sec)
	if err := s.patchSection(0, primaryOrder); err != nil {
		return nil, fmt.Errorf("primary header: %w", err)
	}

	s.version, err = orig.Version()
	if err != nil {
		return nil, err
	}
	kf8, err := s.kf8Section(orig)
	if err != nil {
		return nil, err
	}
	if kf8 != NoKF8Section {
		if err := s.patchSection(kf8, secondaryOrder); err != nil {
			return nil, fmt.Errorf("kf8 header (section %d): %w", kf8, err)
		}
		s.combo = true
		s.kf8 = kf8
	}
	s.log.Debug("patched container",
		"version", s.version, "combo", s.combo, "kf8_section", s.kf8, "size", len(s.data))

	return &Result{
		Data:       s.data,
		Version:    s.version,
		Combo:      s.combo,
		KF8Section: s.kf8,
	}, nil
}

// kf8Section decides whether the container carries a second header, based
// on the original primary header.
func (s *Session) kf8Section(orig *exth.Header) (int, error) {
	if s.version == format.MOBIVersionKF8 {
		s.log.Debug("standalone KF8, no second header")
		return NoKF8Section, nil
	}
	refs, err := orig.Find(format.EXTHTypeKF8Boundary)
	if err != nil {
		return NoKF8Section, err
	}
	if len(refs) == 0 {
		s.log.Debug("no kf8 boundary record")
		return NoKF8Section, nil
	}
	// Only the first record counts; files carry at most one.
	if len(refs[0]) < 4 {
		return NoKF8Section, fmt.Errorf("kf8 boundary payload is %d bytes: %w", len(refs[0]), format.ErrFormat)
	}
	idx := buf.U32BE(refs[0])
	if idx == format.KF8BoundaryNone {
		s.log.Debug("kf8 boundary is the none sentinel")
		return NoKF8Section, nil
	}
	if uint64(idx) >= uint64(s.nsec) {
		return NoKF8Section, fmt.Errorf("%w: kf8 boundary %d (nsec=%d)", format.ErrRange, idx, s.nsec)
	}
	return int(idx), nil
}

// patchSection rewrites the managed records of section i and writes it back.
func (s *Session) patchSection(i int, order []uint32) error {
	sec, err := pdb.Read(s.data, i)
	if err != nil {
		return err
	}
	h := exth.NewHeader(sec)
	for _, typ := range managedTypes {
		if _, err := h.Delete(typ); err != nil {
			return fmt.Errorf("del exth %d: %w", typ, err)
		}
	}
	for _, typ := range order {
		payload := s.id
		if typ == format.EXTHTypeCDEType {
			payload = s.marker
		}
		if err := h.Add(typ, payload); err != nil {
			return err
		}
	}
	s.log.Debug("patched header", "section", i, "bytes", h.Len())
	out, err := pdb.Replace(s.data, i, h.Bytes())
	if err != nil {
		return err
	}
	s.data = out
	return nil
}

// Patch stamps identifier into data and returns the patched copy.
func Patch(data []byte, identifier string, opts *Options) (*Result, error) {
	s, err := NewSession(data, identifier, opts)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
