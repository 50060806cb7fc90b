package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dynastydash/dynastydash/internal/cmd/globals"
	"github.com/dynastydash/dynastydash/internal/cmd/table"
	"github.com/dynastydash/dynastydash/pkg/logging"
)

var rankingsFlags *globals.LeagueFlags

// rankingsCmd fetches and displays the current dynasty rankings.
var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show current dynasty player rankings",
	Long: `Fetch the current KeepTradeCut dynasty rankings and display each
player's rank, team, position, age, and trade value.`,
	RunE: runRankings,
}

func init() {
	rootCmd.AddCommand(rankingsCmd)
	rankingsFlags = &globals.LeagueFlags{}
	globals.AddRankingsFlags(rankingsCmd, rankingsFlags)
}

func runRankings(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rankingsFlags.Resolve()

	runner := newRunner(rankingsFlags.MaxPages)
	records, err := runner.Rankings(ctx)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to fetch rankings")
		return err
	}

	if tableOutput() {
		return formatter().Format(os.Stdout, table.Rankings(records))
	}
	return formatter().Format(os.Stdout, records)
}
