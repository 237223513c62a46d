package evolution

import "strings"

// Normalize returns the lookup form of a species name: trimmed, lowercased,
// with any form qualifier after the first '-' removed.
// "Raichu-Alola" -> "raichu", "  Pikachu " -> "pikachu".
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '-'); i >= 0 {
		n = n[:i]
	}
	return n
}
