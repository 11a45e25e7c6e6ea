// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Make converts name into its canonical slug: lowercase, every rune
// outside [a-z0-9] replaced by '-', runs collapsed, leading and
// trailing '-' trimmed. The derivation is deterministic; callers that
// need distinct slugs must reject collisions themselves.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
