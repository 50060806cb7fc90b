package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dynastydash/dynastydash/internal/cmd/globals"
	"github.com/dynastydash/dynastydash/internal/cmd/table"
	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/logging"
)

var rosterFlags *globals.LeagueFlags

// rosterCmd lists every roster in the league with resolved player names.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List league rosters",
	Long: `List every roster in the league, grouped by owner, with Sleeper
player IDs resolved to player names.`,
	RunE: runRoster,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
	rosterFlags = globals.AddLeagueFlags(rosterCmd)
}

func runRoster(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rosterFlags.Resolve()
	if rosterFlags.League == "" {
		return &errors.ValidationError{Field: "league", Message: "league ID is required (--league or the 'league' config key)"}
	}

	runner := newRunner(rosterFlags.MaxPages)
	entries, err := runner.Rosters(ctx, rosterFlags.League)
	if err != nil {
		logging.Error().Err(err).Str("league", rosterFlags.League).Msg("Failed to fetch rosters")
		return err
	}

	if tableOutput() {
		fmt.Printf("League %s: %d rosters\n\n", rosterFlags.League, len(entries))
		return formatter().Format(os.Stdout, table.Rosters(entries))
	}
	return formatter().Format(os.Stdout, entries)
}
