// Package constants provides shared constants used throughout the dynastydash
// codebase. This includes timeouts, pagination limits, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to
	// external data sources
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for a full CLI command run
	CommandTimeout = 5 * time.Minute

	// SessionCacheTTL bounds how long fetched player tables and rankings
	// are reused within a session before being refetched
	SessionCacheTTL = 1 * time.Hour
)

// Pagination constants for the rankings scrape
const (
	// RankingsPageSize is the number of players a full rankings page carries.
	// A short page signals the end of the listing.
	RankingsPageSize = 50

	// DefaultMaxPages caps the number of rankings pages fetched per run
	DefaultMaxPages = 10
)

// Chart constants for the team summary view
const (
	// TopPlayersChartSize is the number of players shown in the value chart
	TopPlayersChartSize = 12

	// ChartBarWidth is the maximum width, in runes, of a chart bar
	ChartBarWidth = 40
)
