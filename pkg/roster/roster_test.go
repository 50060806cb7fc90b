package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	users := []User{
		{ID: "u1", DisplayName: "leaguemate42"},
		{ID: "u2", DisplayName: ""},
	}
	rosters := []Roster{
		{OwnerID: "u1", RosterID: 1, Players: []string{"p1", "p9"}, Taxi: []string{"p3"}},
		{OwnerID: "u2", RosterID: 2, Players: []string{"p2"}},
		{OwnerID: "ghost", RosterID: 3, Players: nil},
	}
	names := map[string]string{
		"p1": "Justin Jefferson",
		"p2": "Bijan Robinson",
		"p3": "Rookie Stash",
	}

	entries := Build(users, rosters, names)
	require.Len(t, entries, 3)

	assert.Equal(t, "leaguemate42", entries[0].Owner)
	assert.Equal(t, 1, entries[0].RosterID)
	assert.Equal(t, []string{"Justin Jefferson", "Unknown (p9)"}, entries[0].Players)
	assert.Equal(t, []string{"Rookie Stash"}, entries[0].Taxi)
	assert.Empty(t, entries[0].Reserve)

	assert.Equal(t, "User u2", entries[1].Owner, "blank display name falls back to user ID")
	assert.Equal(t, "User ghost", entries[2].Owner, "unknown owner falls back to owner ID")
	assert.Empty(t, entries[2].Players, "nil player list is an empty squad")
}

func TestBuildResolvesBlankNamesToUnknown(t *testing.T) {
	rosters := []Roster{{OwnerID: "u1", RosterID: 1, Players: []string{"p1"}}}
	names := map[string]string{"p1": "   "}

	entries := Build(nil, rosters, names)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Unknown (p1)"}, entries[0].Players)
}

func TestForOwner(t *testing.T) {
	entries := []Entry{
		{Owner: "leaguemate42", RosterID: 1},
		{Owner: "other", RosterID: 2},
	}

	e, ok := ForOwner(entries, "leaguemate42")
	require.True(t, ok)
	assert.Equal(t, 1, e.RosterID)

	_, ok = ForOwner(entries, "LEAGUEMATE42")
	assert.False(t, ok, "owner lookup is exact")

	_, ok = ForOwner(entries, "stranger")
	assert.False(t, ok)
}

func TestByOwnerID(t *testing.T) {
	entries := []Entry{
		{Owner: "leaguemate42", OwnerID: "u1", RosterID: 1},
		{Owner: "other", OwnerID: "u2", RosterID: 2},
	}

	e, ok := ByOwnerID(entries, "u2")
	require.True(t, ok)
	assert.Equal(t, 2, e.RosterID)

	_, ok = ByOwnerID(entries, "u9")
	assert.False(t, ok)
}
