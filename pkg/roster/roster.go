// Package roster assembles league rosters with player IDs resolved to
// display names.
package roster

import (
	"fmt"
	"strings"
)

// User is one league member as reported by the roster source.
type User struct {
	ID          string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Roster is one team's raw player-ID lists as reported by the roster source.
type Roster struct {
	OwnerID  string   `json:"owner_id"`
	RosterID int      `json:"roster_id"`
	Players  []string `json:"players"`
	Taxi     []string `json:"taxi"`
	Reserve  []string `json:"reserve"`
}

// Entry is one team with every player ID resolved to a display name.
type Entry struct {
	Owner    string   `json:"owner"`
	OwnerID  string   `json:"owner_id"`
	RosterID int      `json:"roster_id"`
	Players  []string `json:"players"`
	Taxi     []string `json:"taxi"`
	Reserve  []string `json:"reserve"`
}

// Build resolves rosters into entries, preserving the source's roster and
// player order. Owners without a user record render as "User <id>" and
// player IDs missing from the name table render as "Unknown (<id>)".
func Build(users []User, rosters []Roster, names map[string]string) []Entry {
	owners := make(map[string]string, len(users))
	for _, u := range users {
		owner := u.DisplayName
		if owner == "" {
			owner = fmt.Sprintf("User %s", u.ID)
		}
		owners[u.ID] = owner
	}

	entries := make([]Entry, 0, len(rosters))
	for _, r := range rosters {
		owner, ok := owners[r.OwnerID]
		if !ok {
			owner = fmt.Sprintf("User %s", r.OwnerID)
		}

		entries = append(entries, Entry{
			Owner:    owner,
			OwnerID:  r.OwnerID,
			RosterID: r.RosterID,
			Players:  resolve(r.Players, names),
			Taxi:     resolve(r.Taxi, names),
			Reserve:  resolve(r.Reserve, names),
		})
	}
	return entries
}

// ForOwner returns the entry owned by the given display name, or false when
// the owner has no roster in the league. The comparison is exact, matching
// how the roster source reports display names.
func ForOwner(entries []Entry, owner string) (Entry, bool) {
	for _, e := range entries {
		if e.Owner == owner {
			return e, true
		}
	}
	return Entry{}, false
}

// ByOwnerID returns the entry whose owner has the given user ID, or false
// when no roster in the league belongs to that user.
func ByOwnerID(entries []Entry, ownerID string) (Entry, bool) {
	for _, e := range entries {
		if e.OwnerID == ownerID {
			return e, true
		}
	}
	return Entry{}, false
}

// resolve maps player IDs through the name table. A nil ID list is an empty
// squad, not an error.
func resolve(ids []string, names map[string]string) []string {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok || strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unknown (%s)", id)
		}
		resolved = append(resolved, name)
	}
	return resolved
}
