package mobi

import (
	"log/slog"

	"github.com/joshuapare/mobikit/mobi/dualmeta"
)

// Result is the outcome of PatchBytes (re-exported for convenience).
type Result = dualmeta.Result

// PatchOptions controls PatchBytes. A nil *PatchOptions uses the defaults.
type PatchOptions struct {
	// Marker is the EXTH 501 content type.
	// Default: "EBOK"
	Marker string

	// Logger receives debug events. Default: discard.
	Logger *slog.Logger
}

// FixOptions controls FixFile. A nil *FixOptions uses the defaults.
type FixOptions struct {
	PatchOptions

	// Identifier is written to EXTH 113 and 504. It goes through
	// ResolveIdentifier first; when empty, one is generated.
	Identifier string

	// IdentifierLength is the length of generated identifiers.
	// Default: 12
	IdentifierLength int

	// Extensions lists accepted input extensions (lower case, with dot).
	// Default: .mobi .prc .azw .azw3 .azw4
	Extensions []string

	// Backup keeps the previous destination at <output>.bak.
	Backup bool

	// FullSync requests F_FULLFSYNC on darwin.
	FullSync bool
}

// FixResult describes a patched file.
type FixResult struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	Identifier string `json:"identifier"`
	Version    uint32 `json:"version"`
	Combo      bool   `json:"combo"`
	KF8Section int    `json:"kf8_section"`
	Size       int    `json:"size"`
}
