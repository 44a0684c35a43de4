package mobi

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultIdentifierLength is the length of generated identifiers.
const DefaultIdentifierLength = 12

// identifierSchemes are URN prefixes whose remainder is used as-is.
var identifierSchemes = []string{"urn:uuid:", "urn:mobi-asin:", "urn:amazon:", "urn:asin:"}

// ResolveIdentifier strips a known URN scheme from raw. An empty result
// means the caller should generate one.
func ResolveIdentifier(raw string) string {
	id := strings.TrimSpace(raw)
	lower := strings.ToLower(id)
	for _, scheme := range identifierSchemes {
		if strings.HasPrefix(lower, scheme) {
			return strings.TrimSpace(id[len(scheme):])
		}
	}
	return id
}

// GenerateIdentifier returns the last n hex digits of a random UUID.
func GenerateIdentifier(n int) string {
	if n <= 0 {
		n = DefaultIdentifierLength
	}
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}
	return hex[len(hex)-n:]
}
