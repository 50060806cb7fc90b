// Package cmd implements the dynastydash CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dynastydash/dynastydash/internal/cmd/globals"
	"github.com/dynastydash/dynastydash/internal/cmd/output"
	"github.com/dynastydash/dynastydash/internal/sources/ktc"
	"github.com/dynastydash/dynastydash/internal/sources/sleeper"
	"github.com/dynastydash/dynastydash/pkg/constants"
	"github.com/dynastydash/dynastydash/pkg/logging"
	"github.com/dynastydash/dynastydash/pkg/pipeline"
	"github.com/dynastydash/dynastydash/pkg/session"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dynastydash",
	Short: "Dynasty league roster valuation",
	Long: `Dynastydash values a Sleeper dynasty roster against KeepTradeCut
rankings.

It fetches your league's rosters from the Sleeper API, scrapes the current
dynasty rankings, reconciles the two player lists by name, and reports your
team's total value, average age, and contention status.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.dynastydash.yaml)")
	globalFlags = globals.AddFlags(rootCmd)

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		panic(fmt.Sprintf("Failed to bind quiet flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dynastydash")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("dynastydash")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}
	if _, err := output.ParseFormat(globalFlags.Output); err != nil {
		return err
	}
	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	noColor := os.Getenv("NO_COLOR") != ""
	if globalFlags != nil && globalFlags.NoColor {
		noColor = true
	}

	logging.Configure(&logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    "stderr",
		NoColor:   noColor,
		AddCaller: level <= zerolog.DebugLevel,
	})
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil {
			if globalFlags != nil && globalFlags.Verbose {
				fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
			}
		}
	}
}

// sessionCache spans all subcommand work within one invocation, so the
// player table and rankings are fetched at most once per run.
var sessionCache = session.New(constants.SessionCacheTTL)

// newRunner wires the live sources into a pipeline runner.
func newRunner(maxPages int) *pipeline.Runner {
	return pipeline.New(
		sleeper.NewClient(),
		ktc.NewClient(),
		pipeline.WithCache(sessionCache),
		pipeline.WithMaxPages(maxPages),
	)
}

// formatter returns the formatter for the selected global output format.
func formatter() output.Formatter {
	return output.NewFormatter(output.Format(globalFlags.Output))
}

// tableOutput reports whether the selected format renders tables.
func tableOutput() bool {
	f := output.Format(globalFlags.Output)
	return f == output.FormatTable || f == output.FormatWide || f == ""
}
