// Package ktc scrapes dynasty player rankings from KeepTradeCut. The site
// has no API, so records come from the listing pages themselves, ~50
// players per page.
package ktc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dynastydash/dynastydash/internal/transport"
	"github.com/dynastydash/dynastydash/pkg/constants"
	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/logging"
	"github.com/dynastydash/dynastydash/pkg/valuation"
)

// SourceID identifies this source in errors and logs.
const SourceID = "ktc"

// DefaultBaseURL is the rankings listing the scraper pages through.
const DefaultBaseURL = "https://keeptradecut.com/dynasty-rankings"

// positionFilters selects skill positions plus rookie draft picks,
// single-QB format.
const positionFilters = "QB|WR|RB|TE|RDP"

// Client scrapes the paginated rankings listing. The scrape target rejects
// default Go user agents, so requests go out with a browser User-Agent.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the rankings URL, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTransport replaces the underlying transport client.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// NewClient creates a new rankings scraper.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		transport: transport.New(transport.WithUserAgent(transport.BrowserUserAgent)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rankings fetches up to maxPages rankings pages and returns the ordered
// valuation list. Pagination stops early on an empty page or a page shorter
// than the full page size. Skipped rows are counted and logged, never
// silently discarded.
func (c *Client) Rankings(ctx context.Context, maxPages int) ([]valuation.Record, error) {
	if maxPages <= 0 {
		maxPages = constants.DefaultMaxPages
	}
	log := logging.Ctx(ctx)

	var records []valuation.Record
	skipped := 0
	for page := 0; page < maxPages; page++ {
		result, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}

		for _, reason := range result.Skipped {
			log.Warn().Str("source", SourceID).Int("page", page).Str("reason", reason).Msg("Skipped rankings row")
		}
		skipped += len(result.Skipped)

		rows := len(result.Records) + len(result.Skipped)
		if rows == 0 {
			break
		}
		records = append(records, result.Records...)
		if rows < constants.RankingsPageSize {
			break
		}
	}

	log.Debug().
		Str("source", SourceID).
		Int("records", len(records)).
		Int("skipped", skipped).
		Msg("Scraped rankings")
	return records, nil
}

// fetchPage downloads and parses a single rankings page.
func (c *Client) fetchPage(ctx context.Context, page int) (PageResult, error) {
	url := fmt.Sprintf("%s?page=%d&filters=%s&format=1", c.baseURL, page, positionFilters)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return PageResult{}, errors.WrapAPI(SourceID, 0, err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.transport.Do(req)
	if err != nil {
		return PageResult{}, &errors.APIError{
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
		return PageResult{}, &errors.APIError{
			Source:     SourceID,
			Endpoint:   url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	return ParsePage(resp.Body)
}
