// Package main provides the entry point for the ledgerlens CLI tool.
package main

import (
	"github.com/talentops/ledgerlens/cmd/ledgerlens/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
