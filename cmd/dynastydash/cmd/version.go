package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dynastydash/dynastydash/internal/cmd/output"
)

// versionInfo holds version details for structured output.
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// versionCmd displays version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	info := versionInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	switch output.Format(globalFlags.Output) {
	case output.FormatJSON, output.FormatYAML:
		return formatter().Format(os.Stdout, info)
	default:
		fmt.Printf("dynastydash %s\n", info.Version)
		fmt.Printf("  commit:  %s\n", info.Commit)
		fmt.Printf("  built:   %s\n", info.BuildDate)
		fmt.Printf("  go:      %s (%s)\n", info.GoVersion, info.Platform)
		return nil
	}
}
