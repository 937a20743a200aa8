package internal

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// fingerprintDomain separates preset digests from any other use of the hash.
const fingerprintDomain = "routecipher/v1/preset"

// Fingerprint returns a short, stable digest of a preset's grid and keys,
// e.g. "3f:a1:07:9c:55:e2:0b:d4". Two operators can compare fingerprints to
// confirm they share the same preset without reading the keys aloud.
func Fingerprint(p Preset) string {
	var b strings.Builder
	b.WriteString(fingerprintDomain)
	b.WriteByte(0)
	b.WriteString(p.Size)
	b.WriteByte(0)
	b.WriteString(FormatKey([]int{p.Rows, p.Cols}))
	b.WriteByte(0)
	b.WriteString(FormatKey(p.EncodeKey))
	b.WriteByte(0)
	b.WriteString(FormatKey(p.DecodeKey))

	sum := blake2b.Sum256([]byte(b.String()))
	h := hex.EncodeToString(sum[:8])
	parts := make([]string, 0, len(h)/2)
	for i := 0; i < len(h); i += 2 {
		parts = append(parts, h[i:i+2])
	}
	return strings.Join(parts, ":")
}
