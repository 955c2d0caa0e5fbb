// Package main is the entry point for the rudr CLI.
//
// rudr is a command-line tool for working with Hydra component
// schematics. It scaffolds new components, validates existing ones,
// renders their workload projection as a Kubernetes pod spec, and
// submits the resulting pod to a cluster.
//
// Commands: init, validate, render, submit, version.
//
// For detailed usage information, run:
//
//	rudr --help
package main

import (
	"fmt"
	"os"

	"github.com/r4b3rt/rudr/cmd/rudr/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
