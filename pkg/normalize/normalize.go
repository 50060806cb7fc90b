// Package normalize canonicalizes free-text player names into comparable keys.
package normalize

import "strings"

// Key is a comparable identity for a player name: lowercase first and last
// tokens of the display name. Last is empty for single-token names.
type Key struct {
	First string
	Last  string
}

// NameKey derives the Key for a display name. Leading and trailing whitespace
// is ignored and any run of internal whitespace separates tokens. An empty
// name yields the zero Key.
func NameKey(name string) Key {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(parts) == 0 {
		return Key{}
	}
	k := Key{First: parts[0]}
	if len(parts) > 1 {
		k.Last = parts[len(parts)-1]
	}
	return k
}

// IsZero reports whether the key carries no name information.
func (k Key) IsZero() bool {
	return k.First == "" && k.Last == ""
}
