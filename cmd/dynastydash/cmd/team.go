package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dynastydash/dynastydash/internal/cmd/globals"
	"github.com/dynastydash/dynastydash/internal/cmd/table"
	"github.com/dynastydash/dynastydash/pkg/constants"
	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/logging"
)

var teamFlags *globals.LeagueFlags

var teamChart bool

// teamCmd values one user's roster against the current rankings.
var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Value your roster against dynasty rankings",
	Long: `Value a user's roster against the current KeepTradeCut dynasty
rankings: match every rostered player to a ranking, then report total value,
average age, and whether the team profiles as a Contender, Tweener, or
Rebuild.`,
	RunE: runTeam,
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamFlags = globals.AddLeagueFlags(teamCmd)
	globals.AddRankingsFlags(teamCmd, teamFlags)
	teamCmd.Flags().BoolVar(&teamChart, "chart", true, "Show a value bar chart of the top players")
}

func runTeam(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	teamFlags.Resolve()
	if teamFlags.League == "" {
		return &errors.ValidationError{Field: "league", Message: "league ID is required (--league or the 'league' config key)"}
	}
	if teamFlags.User == "" {
		return &errors.ValidationError{Field: "user", Message: "username is required (--user or the 'user' config key)"}
	}

	runner := newRunner(teamFlags.MaxPages)
	report, err := runner.Run(ctx, teamFlags.User, teamFlags.League)
	if err != nil {
		logging.Error().Err(err).
			Str("user", teamFlags.User).
			Str("league", teamFlags.League).
			Msg("Failed to build team report")
		return err
	}

	for _, warning := range report.Warnings {
		logging.Warn().Msg(warning)
	}

	if !tableOutput() {
		return formatter().Format(os.Stdout, report)
	}

	if report.Team == nil {
		fmt.Printf("No roster found for %s in league %s\n", teamFlags.User, teamFlags.League)
		return nil
	}

	f := formatter()
	fmt.Printf("%s's roster\n\n", report.Team.Entry.Owner)
	if err := f.Format(os.Stdout, table.Team(report.Team.Results)); err != nil {
		return err
	}
	fmt.Println()
	if err := f.Format(os.Stdout, table.Summary(report.Team.Summary)); err != nil {
		return err
	}
	if teamChart {
		fmt.Println()
		if err := f.Format(os.Stdout, table.Chart(report.Team.Results, constants.TopPlayersChartSize)); err != nil {
			return err
		}
	}
	return nil
}
