package config

const (
	defaultMarker           = "EBOK"
	defaultIdentifierLength = 12
	defaultLogDir           = "~/.local/share/mobikit/logs"
	defaultLogLevel         = "info"
)

// DefaultExtensions are the Kindle container extensions accepted for
// patching.
var DefaultExtensions = []string{".mobi", ".prc", ".azw", ".azw3", ".azw4"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Patch: Patch{
			Marker:           defaultMarker,
			Extensions:       append([]string(nil), DefaultExtensions...),
			IdentifierLength: defaultIdentifierLength,
		},
		Logging: Logging{
			Dir:   defaultLogDir,
			Level: defaultLogLevel,
		},
	}
}
