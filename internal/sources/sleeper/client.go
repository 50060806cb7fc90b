// Package sleeper fetches league users, rosters, and the league-wide player
// name table from the public Sleeper API.
package sleeper

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/dynastydash/dynastydash/internal/transport"
	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/logging"
	"github.com/dynastydash/dynastydash/pkg/roster"
)

// SourceID identifies this source in errors and logs.
const SourceID = "sleeper"

// DefaultBaseURL is the public Sleeper API endpoint.
const DefaultBaseURL = "https://api.sleeper.app/v1"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is a read-only Sleeper API client. The API is public and requires
// no authentication.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTransport replaces the underlying transport client.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// NewClient creates a new Sleeper API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		transport: transport.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserID resolves a Sleeper username to its user ID. A username the API
// does not know propagates as a not-found error naming the username.
func (c *Client) UserID(ctx context.Context, username string) (string, error) {
	var user struct {
		UserID string `json:"user_id"`
	}
	err := c.getJSON(ctx, fmt.Sprintf("%s/user/%s", c.baseURL, username), &user)
	if err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return "", errors.NewNotFoundError("user", username)
		}
		return "", err
	}
	if user.UserID == "" {
		return "", errors.NewNotFoundError("user", username)
	}
	return user.UserID, nil
}

// LeagueUsers fetches all members of a league.
func (c *Client) LeagueUsers(ctx context.Context, leagueID string) ([]roster.User, error) {
	var users []roster.User
	if err := c.getJSON(ctx, fmt.Sprintf("%s/league/%s/users", c.baseURL, leagueID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// LeagueRosters fetches all rosters of a league in the API's order.
func (c *Client) LeagueRosters(ctx context.Context, leagueID string) ([]roster.Roster, error) {
	var rosters []roster.Roster
	if err := c.getJSON(ctx, fmt.Sprintf("%s/league/%s/rosters", c.baseURL, leagueID), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// player is the subset of Sleeper's per-player blob the name table needs.
type player struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PlayerNames fetches the full player-ID to display-name table. The response
// covers the whole player universe (thousands of entries); Sleeper asks that
// it not be fetched repeatedly, which the session cache enforces upstream.
func (c *Client) PlayerNames(ctx context.Context) (map[string]string, error) {
	var players map[string]player
	if err := c.getJSON(ctx, c.baseURL+"/players/nfl", &players); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(players))
	for id, p := range players {
		full := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
		if full == "" || full == "None None" {
			full = id
		}
		names[id] = full
	}

	logging.Ctx(ctx).Debug().Int("players", len(names)).Msg("Built player name table")
	return names, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return &errors.APIError{
			Source:   SourceID,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Source:     SourceID,
			Endpoint:   url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapParse("json", url, err)
	}
	return nil
}
