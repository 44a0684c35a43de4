package mobi

import (
	"fmt"

	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/internal/mmfile"
	"github.com/joshuapare/mobikit/mobi/dualmeta"
	"github.com/joshuapare/mobikit/mobi/exth"
	"github.com/joshuapare/mobikit/mobi/pdb"
)

// Info summarises a Kindle container.
type Info struct {
	Name       string       `json:"name"`
	Size       int          `json:"size"`
	Sections   int          `json:"sections"`
	Combo      bool         `json:"combo"`
	KF8Section int          `json:"kf8_section"`
	Headers    []HeaderInfo `json:"headers"`
}

// HeaderInfo describes one MOBI header section.
type HeaderInfo struct {
	Section      int          `json:"section"`
	Version      uint32       `json:"version"`
	KF8          bool         `json:"kf8"`
	TextEncoding uint32       `json:"text_encoding"`
	Title        string       `json:"title"`
	ASIN         string       `json:"asin,omitempty"`
	CDEType      string       `json:"cde_type,omitempty"`
	EXTHOffset   int          `json:"exth_offset"`
	EXTHLength   uint32       `json:"exth_length"`
	Records      []RecordInfo `json:"records"`
}

// RecordInfo is one EXTH record prepared for display.
type RecordInfo struct {
	Type   uint32 `json:"type"`
	Name   string `json:"name,omitempty"`
	Length int    `json:"length"`
	Value  string `json:"value"`
}

// Inspect reads the file at path and describes its headers.
func Inspect(path string) (*Info, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	info, err := InspectBytes(data)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	return info, nil
}

// InspectBytes describes the headers of an in-memory container. The KF8
// header of a combo file is located the same way PatchBytes locates it.
func InspectBytes(data []byte) (*Info, error) {
	if err := ValidateIdent(data); err != nil {
		return nil, err
	}
	c, err := pdb.New(data)
	if err != nil {
		return nil, err
	}
	info := &Info{
		Name:       c.Header().Name,
		Size:       c.Len(),
		Sections:   c.NumSections(),
		KF8Section: dualmeta.NoKF8Section,
	}

	primary, err := inspectHeader(c, 0)
	if err != nil {
		return nil, err
	}
	info.Headers = append(info.Headers, *primary)

	if primary.KF8 {
		return info, nil
	}
	sec0, err := c.Section(0)
	if err != nil {
		return nil, err
	}
	kf8, ok := kf8Reference(sec0, c.NumSections())
	if !ok {
		return info, nil
	}
	secondary, err := inspectHeader(c, kf8)
	if err != nil {
		return nil, fmt.Errorf("kf8 header (section %d): %w", kf8, err)
	}
	info.Combo = true
	info.KF8Section = kf8
	info.Headers = append(info.Headers, *secondary)
	return info, nil
}

func inspectHeader(c *pdb.Container, i int) (*HeaderInfo, error) {
	sec, err := c.Section(i)
	if err != nil {
		return nil, err
	}
	mh, err := format.ParseMOBIHeader(sec)
	if err != nil {
		return nil, err
	}
	h := &HeaderInfo{
		Section:      i,
		Version:      mh.Version,
		KF8:          mh.IsKF8(),
		TextEncoding: mh.TextEncoding,
	}
	// A bad title is shown empty rather than failing the whole report.
	if title, err := mh.Title(sec); err == nil {
		h.Title = title
	}

	g, err := exth.ParseGeometry(sec)
	if err != nil {
		return nil, err
	}
	h.EXTHOffset = mh.EXTHOffset()
	h.EXTHLength = g.DeclaredLength

	recs, err := exth.Records(sec)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		h.Records = append(h.Records, RecordInfo{
			Type:   r.Type,
			Name:   exth.TypeName(r.Type),
			Length: r.Length,
			Value:  exth.FormatPayload(r.Type, r.Payload),
		})
		switch r.Type {
		case format.EXTHTypeASIN:
			if h.ASIN == "" {
				h.ASIN = string(r.Payload)
			}
		case format.EXTHTypeCDEType:
			if h.CDEType == "" {
				h.CDEType = string(r.Payload)
			}
		}
	}
	return h, nil
}

// kf8Reference returns the in-range section named by the first EXTH 121
// record of sec.
func kf8Reference(sec []byte, numSections int) (int, bool) {
	refs, err := exth.ReadRecords(sec, format.EXTHTypeKF8Boundary)
	if err != nil || len(refs) == 0 || len(refs[0]) < 4 {
		return 0, false
	}
	idx := format.ReadU32(refs[0], 0)
	if idx == format.KF8BoundaryNone || uint64(idx) >= uint64(numSections) {
		return 0, false
	}
	return int(idx), true
}
