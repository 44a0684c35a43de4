package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePatch() error {
	if len(c.Patch.Marker) != 4 {
		return fmt.Errorf("%w: patch.marker must be exactly 4 bytes, got %q", ErrInvalid, c.Patch.Marker)
	}
	for _, r := range c.Patch.Marker {
		if r < 0x20 || r > 0x7e {
			return fmt.Errorf("%w: patch.marker must be printable ASCII, got %q", ErrInvalid, c.Patch.Marker)
		}
	}
	if len(c.Patch.Extensions) == 0 {
		return fmt.Errorf("%w: patch.extensions must not be empty", ErrInvalid)
	}
	for _, ext := range c.Patch.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: patch.extensions entry %q is not an extension", ErrInvalid, ext)
		}
	}
	if c.Patch.IdentifierLength < 1 || c.Patch.IdentifierLength > 32 {
		return fmt.Errorf("%w: patch.identifier_length must be between 1 and 32", ErrInvalid)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the configured level name.
func (l Logging) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: logging.level %q (want debug, info, warn or error)", ErrInvalid, l.Level)
	}
}
