package main

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/ufm/cmd/ufm/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(version, commit, date)

	err := rootCmd.Execute()

	if metricsErr := commands.WriteMetrics(); metricsErr != nil {
		fmt.Fprintln(os.Stderr, metricsErr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
