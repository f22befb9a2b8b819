package main

import (
	"fmt"
	"os"

	"github.com/de-tools/cost-compass/pkg/terminal/commands"
	"github.com/de-tools/cost-compass/pkg/terminal/export"
	"github.com/spf13/cobra"
)

func main() {
	reporter := export.NewReporter(os.Stdout)

	rootCmd := &cobra.Command{
		Use:   "cost-compass",
		Short: "Cloud cost dashboard tool",
	}

	rootCmd.AddCommand(commands.NewSnapshotCmd(reporter))
	rootCmd.AddCommand(commands.NewRecommendationsCmd(reporter))
	rootCmd.AddCommand(commands.NewConnectCmd())
	rootCmd.AddCommand(commands.NewDisconnectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
