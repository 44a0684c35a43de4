package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Patch.Marker != "EBOK" {
		t.Fatalf("marker = %q, want EBOK", cfg.Patch.Marker)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("expected found=false for a missing file")
	}
	if cfg.Patch.IdentifierLength != defaultIdentifierLength {
		t.Fatalf("identifier length = %d, want default", cfg.Patch.IdentifierLength)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[patch]
marker = "PDOC"
extensions = ["MOBI", ".azw3"]

[output]
backup = true

[logging]
enabled = true
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, found, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if cfg.Patch.Marker != "PDOC" {
		t.Errorf("marker = %q, want PDOC", cfg.Patch.Marker)
	}
	if len(cfg.Patch.Extensions) != 2 || cfg.Patch.Extensions[0] != ".mobi" || cfg.Patch.Extensions[1] != ".azw3" {
		t.Errorf("extensions = %v, want [.mobi .azw3]", cfg.Patch.Extensions)
	}
	if !cfg.Output.Backup {
		t.Error("expected output.backup = true")
	}
	if cfg.Patch.IdentifierLength != defaultIdentifierLength {
		t.Errorf("unset identifier_length should keep its default, got %d", cfg.Patch.IdentifierLength)
	}
	level, err := cfg.Logging.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("level = %v, %v; want debug", level, err)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short marker", "[patch]\nmarker = \"EBO\"\n"},
		{"non ascii marker", "[patch]\nmarker = \"EBÖ\"\n"},
		{"empty extensions", "[patch]\nextensions = []\n"},
		{"identifier too long", "[patch]\nidentifier_length = 64\n"},
		{"bad level", "[logging]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, _, err := Load(path); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[patch]\nmarkr = \"EBOK\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	out, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Patch.Marker != cfg.Patch.Marker || len(loaded.Patch.Extensions) != len(cfg.Patch.Extensions) {
		t.Fatalf("round trip mismatch: %+v vs %+v", loaded.Patch, cfg.Patch)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/books")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "books") {
		t.Fatalf("ExpandPath = %q, want %q", got, filepath.Join(home, "books"))
	}
}
