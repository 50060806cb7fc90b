// Package pipeline runs one full fetch-and-reconcile pass: league rosters
// from the roster source, the valuation list from the rankings source, and
// the requesting user's matched team summary.
package pipeline

import (
	"context"
	"fmt"

	"github.com/dynastydash/dynastydash/pkg/constants"
	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/logging"
	"github.com/dynastydash/dynastydash/pkg/matcher"
	"github.com/dynastydash/dynastydash/pkg/roster"
	"github.com/dynastydash/dynastydash/pkg/session"
	"github.com/dynastydash/dynastydash/pkg/valuation"
)

// RosterSource provides league membership, rosters, and the player name
// table.
type RosterSource interface {
	UserID(ctx context.Context, username string) (string, error)
	LeagueUsers(ctx context.Context, leagueID string) ([]roster.User, error)
	LeagueRosters(ctx context.Context, leagueID string) ([]roster.Roster, error)
	PlayerNames(ctx context.Context) (map[string]string, error)
}

// ValuationSource provides the ordered dynasty valuation list.
type ValuationSource interface {
	Rankings(ctx context.Context, maxPages int) ([]valuation.Record, error)
}

// TeamReport is the matched view of one user's roster.
type TeamReport struct {
	Entry   roster.Entry      `json:"entry"`
	Results []matcher.Result  `json:"results"`
	Summary valuation.Summary `json:"summary"`
}

// Report is the outcome of one pipeline run. Team is nil when the user owns
// no roster in the league; the league-wide views still populate and the
// condition is recorded as a warning.
type Report struct {
	Rosters  []roster.Entry     `json:"rosters"`
	Rankings []valuation.Record `json:"rankings"`
	Team     *TeamReport        `json:"team,omitempty"`
	Warnings []string           `json:"warnings,omitempty"`
}

// Runner wires the sources and the session cache into runnable pipelines.
type Runner struct {
	rosters   RosterSource
	valuation ValuationSource
	cache     *session.Cache
	maxPages  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxPages caps the number of rankings pages fetched per run.
func WithMaxPages(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxPages = n
		}
	}
}

// WithCache sets the session cache used for the player table and rankings.
func WithCache(c *session.Cache) Option {
	return func(r *Runner) {
		r.cache = c
	}
}

// New creates a Runner over the given sources.
func New(rosters RosterSource, val ValuationSource, opts ...Option) *Runner {
	r := &Runner{
		rosters:   rosters,
		valuation: val,
		maxPages:  constants.DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rosters fetches and assembles all league rosters.
func (r *Runner) Rosters(ctx context.Context, leagueID string) ([]roster.Entry, error) {
	if leagueID == "" {
		return nil, errors.NewValidationError("league", leagueID, "league ID is required")
	}

	names, err := session.Fetch(ctx, r.cache, session.PlayersKey, r.rosters.PlayerNames)
	if err != nil {
		return nil, err
	}
	users, err := r.rosters.LeagueUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	rosters, err := r.rosters.LeagueRosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("league", leagueID).
		Int("rosters", len(rosters)).
		Msg("Assembled league rosters")
	return roster.Build(users, rosters, names), nil
}

// Rankings fetches the valuation list through the session cache.
func (r *Runner) Rankings(ctx context.Context) ([]valuation.Record, error) {
	return session.Fetch(ctx, r.cache, session.RankingsKey, func(ctx context.Context) ([]valuation.Record, error) {
		return r.valuation.Rankings(ctx, r.maxPages)
	})
}

// Run executes one full pass for a user in a league.
func (r *Runner) Run(ctx context.Context, username, leagueID string) (*Report, error) {
	if username == "" {
		return nil, errors.NewValidationError("username", username, "username is required")
	}

	userID, err := r.rosters.UserID(ctx, username)
	if err != nil {
		return nil, err
	}

	entries, err := r.Rosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rankings, err := r.Rankings(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Rosters: entries, Rankings: rankings}

	entry, ok := roster.ByOwnerID(entries, userID)
	if !ok {
		// The roster source keys some leagues by display name rather
		// than the co-owner user ID.
		entry, ok = roster.ForOwner(entries, username)
	}
	if !ok {
		warning := fmt.Sprintf("no roster found for %s in league %s; check that the display name matches exactly", username, leagueID)
		report.Warnings = append(report.Warnings, warning)
		logging.Ctx(ctx).Warn().Str("user", username).Str("league", leagueID).Msg("No roster for user")
		return report, nil
	}

	results := matcher.New(rankings).MatchAll(entry.Players)
	report.Team = &TeamReport{
		Entry:   entry,
		Results: results,
		Summary: matcher.Summarize(results),
	}
	return report, nil
}
