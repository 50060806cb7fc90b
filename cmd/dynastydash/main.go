// Package main provides the entry point for the dynastydash CLI tool.
package main

import "github.com/dynastydash/dynastydash/cmd/dynastydash/cmd"

// Version information populated by the build system.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
