package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/matcher"
	"github.com/dynastydash/dynastydash/pkg/roster"
	"github.com/dynastydash/dynastydash/pkg/session"
	"github.com/dynastydash/dynastydash/pkg/valuation"
)

type fakeRosterSource struct {
	userID      string
	userErr     error
	users       []roster.User
	rosters     []roster.Roster
	names       map[string]string
	nameFetches int
}

func (f *fakeRosterSource) UserID(_ context.Context, username string) (string, error) {
	if f.userErr != nil {
		return "", f.userErr
	}
	if f.userID == "" {
		return "", errors.NewNotFoundError("user", username)
	}
	return f.userID, nil
}

func (f *fakeRosterSource) LeagueUsers(context.Context, string) ([]roster.User, error) {
	return f.users, nil
}

func (f *fakeRosterSource) LeagueRosters(context.Context, string) ([]roster.Roster, error) {
	return f.rosters, nil
}

func (f *fakeRosterSource) PlayerNames(context.Context) (map[string]string, error) {
	f.nameFetches++
	return f.names, nil
}

type fakeValuationSource struct {
	records []valuation.Record
	fetches int
}

func (f *fakeValuationSource) Rankings(context.Context, int) ([]valuation.Record, error) {
	f.fetches++
	return f.records, nil
}

func newFakes() (*fakeRosterSource, *fakeValuationSource) {
	rs := &fakeRosterSource{
		userID: "u1",
		users: []roster.User{
			{ID: "u1", DisplayName: "leaguemate42"},
			{ID: "u2", DisplayName: "rival"},
		},
		rosters: []roster.Roster{
			{OwnerID: "u1", RosterID: 1, Players: []string{"p1", "p404"}},
			{OwnerID: "u2", RosterID: 2, Players: []string{"p2"}},
		},
		names: map[string]string{
			"p1": "Justin Jefferson",
			"p2": "Bijan Robinson",
		},
	}
	vs := &fakeValuationSource{
		records: []valuation.Record{
			{Rank: "1", Name: "Justin Jefferson", Position: "WR1", Age: "24.1 y.o.", Value: "9,500"},
			{Rank: "3", Name: "Bijan Robinson", Position: "RB1", Age: "21.6 y.o.", Value: "8,944"},
		},
	}
	return rs, vs
}

func TestRunMatchedTeam(t *testing.T) {
	rs, vs := newFakes()
	r := New(rs, vs)

	report, err := r.Run(context.Background(), "leaguemate42", "999")
	require.NoError(t, err)
	require.NotNil(t, report.Team)
	assert.Empty(t, report.Warnings)

	assert.Len(t, report.Rosters, 2)
	assert.Len(t, report.Rankings, 2)
	assert.Equal(t, 1, report.Team.Entry.RosterID)

	results := report.Team.Results
	require.Len(t, results, 2, "one result per roster player")
	assert.Equal(t, "Justin Jefferson", results[0].Player)
	assert.True(t, results[0].Matched())
	assert.Equal(t, matcher.KindExact, results[0].Kind)
	assert.Equal(t, "Unknown (p404)", results[1].Player)
	assert.False(t, results[1].Matched())

	assert.Equal(t, 9500.0, report.Team.Summary.TotalValue)
	assert.InDelta(t, 12.05, report.Team.Summary.AverageAge, 1e-9)
}

func TestRunMissingRosterIsWarning(t *testing.T) {
	rs, vs := newFakes()
	rs.userID = "u9" // valid user, but owns nothing in this league

	r := New(rs, vs)
	report, err := r.Run(context.Background(), "outsider", "999")
	require.NoError(t, err)
	assert.Nil(t, report.Team)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "outsider")
	assert.Len(t, report.Rosters, 2, "league views still populate")
}

func TestRunFallsBackToDisplayNameMatch(t *testing.T) {
	rs, vs := newFakes()
	rs.userID = "u9"

	r := New(rs, vs)
	report, err := r.Run(context.Background(), "leaguemate42", "999")
	require.NoError(t, err)
	require.NotNil(t, report.Team)
	assert.Equal(t, 1, report.Team.Entry.RosterID)
}

func TestRunUnknownUserPropagates(t *testing.T) {
	rs, vs := newFakes()
	rs.userErr = errors.NewNotFoundError("user", "nobody")

	r := New(rs, vs)
	_, err := r.Run(context.Background(), "nobody", "999")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRunValidatesInput(t *testing.T) {
	rs, vs := newFakes()
	r := New(rs, vs)

	_, err := r.Run(context.Background(), "", "999")
	assert.True(t, errors.IsValidationError(err))

	_, err = r.Run(context.Background(), "leaguemate42", "")
	assert.True(t, errors.IsValidationError(err))
}

func TestRunUsesSessionCache(t *testing.T) {
	rs, vs := newFakes()
	cache := session.New(time.Hour)
	r := New(rs, vs, WithCache(cache))

	for i := 0; i < 3; i++ {
		_, err := r.Run(context.Background(), "leaguemate42", "999")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, rs.nameFetches, "player table fetched once per session")
	assert.Equal(t, 1, vs.fetches, "rankings fetched once per session")
}

func TestRunEmptyRankings(t *testing.T) {
	rs, vs := newFakes()
	vs.records = nil

	r := New(rs, vs)
	report, err := r.Run(context.Background(), "leaguemate42", "999")
	require.NoError(t, err)
	require.NotNil(t, report.Team)
	for _, res := range report.Team.Results {
		assert.False(t, res.Matched(), "empty valuation list matches nothing")
	}
	assert.Zero(t, report.Team.Summary.TotalValue)
}
