package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynastydash/dynastydash/pkg/errors"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUserID(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/user/leaguemate42": `{"user_id":"12345","display_name":"leaguemate42"}`,
	})
	c := NewClient(WithBaseURL(srv.URL))

	id, err := c.UserID(context.Background(), "leaguemate42")
	require.NoError(t, err)
	assert.Equal(t, "12345", id)
}

func TestUserIDNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.UserID(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "nobody")
}

func TestLeagueUsersAndRosters(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/league/999/users": `[
			{"user_id":"u1","display_name":"leaguemate42"},
			{"user_id":"u2","display_name":"other"}
		]`,
		"/league/999/rosters": `[
			{"owner_id":"u1","roster_id":1,"players":["p1","p2"],"taxi":["p3"],"reserve":null},
			{"owner_id":"u2","roster_id":2,"players":null,"taxi":null,"reserve":null}
		]`,
	})
	c := NewClient(WithBaseURL(srv.URL))

	users, err := c.LeagueUsers(context.Background(), "999")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "leaguemate42", users[0].DisplayName)

	rosters, err := c.LeagueRosters(context.Background(), "999")
	require.NoError(t, err)
	require.Len(t, rosters, 2)
	assert.Equal(t, []string{"p1", "p2"}, rosters[0].Players)
	assert.Equal(t, []string{"p3"}, rosters[0].Taxi)
	assert.Nil(t, rosters[1].Players, "null player list decodes to nil")
}

func TestPlayerNames(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/players/nfl": `{
			"p1":{"first_name":"Justin","last_name":"Jefferson"},
			"p2":{"first_name":" Bijan ","last_name":" Robinson "},
			"p3":{"first_name":"","last_name":""},
			"p4":{"first_name":"None","last_name":"None"}
		}`,
	})
	c := NewClient(WithBaseURL(srv.URL))

	names, err := c.PlayerNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Justin Jefferson", names["p1"])
	assert.Equal(t, "Bijan Robinson", names["p2"])
	assert.Equal(t, "p3", names["p3"], "blank names fall back to the player ID")
	assert.Equal(t, "p4", names["p4"], "placeholder names fall back to the player ID")
}

func TestUpstreamErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.LeagueUsers(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestBadJSONIsParseError(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/league/999/users": `{not json`,
	})
	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.LeagueUsers(context.Background(), "999")
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
