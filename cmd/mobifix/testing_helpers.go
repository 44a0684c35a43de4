package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/mobikit/internal/config"
	"github.com/joshuapare/mobikit/internal/format"
	"github.com/joshuapare/mobikit/internal/testutil"
)

// resetFlags restores global flag state and the default configuration.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut, noColor = false, false, false, true
	fixASIN, fixOutput, fixBackup, fixInPlace = "", "", false, false
	c := config.Default()
	cfg = &c
}

// writeComboBook writes a two-header test ebook into a temp dir.
func writeComboBook(t *testing.T, name string) string {
	t.Helper()
	primary := testutil.BuildHeader(testutil.HeaderSpec{
		Version: 6,
		Title:   "CLI Book",
		Records: []testutil.Record{
			{Type: 100, Payload: []byte("Jane Doe")},
			testutil.KF8Ref(2),
		},
	})
	kf8 := testutil.BuildHeader(testutil.HeaderSpec{
		Version: 8,
		Title:   "CLI Book",
		Records: []testutil.Record{{Type: format.EXTHTypeCDEType, Payload: []byte("PDOC")}},
	})
	data := testutil.BuildContainer("CLI_Book", primary, []byte("text"), kf8)

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test book: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// decodeJSON unmarshals output into v or fails the test.
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}
