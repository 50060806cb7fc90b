package globals

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LeagueFlags holds flags identifying the league and user a command acts on.
// Values fall back to configuration (config file or environment) when the
// flag is not set.
type LeagueFlags struct {
	League   string
	User     string
	MaxPages int
}

// AddLeagueFlags adds league selection flags to a command.
func AddLeagueFlags(cmd *cobra.Command) *LeagueFlags {
	flags := &LeagueFlags{}

	cmd.Flags().StringVarP(&flags.League, "league", "l", "",
		"Sleeper league ID (falls back to the 'league' config key)")
	cmd.Flags().StringVarP(&flags.User, "user", "u", "",
		"Sleeper username (falls back to the 'user' config key)")

	return flags
}

// AddRankingsFlags adds rankings fetch flags to a command.
func AddRankingsFlags(cmd *cobra.Command, flags *LeagueFlags) {
	cmd.Flags().IntVar(&flags.MaxPages, "max-pages", 0,
		"Maximum rankings pages to scrape (falls back to the 'max_pages' config key)")
}

// Resolve fills unset flag values from configuration.
func (f *LeagueFlags) Resolve() {
	if f.League == "" {
		f.League = viper.GetString("league")
	}
	if f.User == "" {
		f.User = viper.GetString("user")
	}
	if f.MaxPages == 0 {
		f.MaxPages = viper.GetInt("max_pages")
	}
}
