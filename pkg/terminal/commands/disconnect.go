package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type DisconnectCmd struct {
	configPath string
}

func NewDisconnectCmd() *cobra.Command {
	dc := &DisconnectCmd{}
	cmd := &cobra.Command{
		Use:   "disconnect",
		Short: "Remove stored AWS credentials",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.configPath, "config", "", "Path to the config file")

	return cmd
}

func (dc *DisconnectCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	orchestrator, err := buildOrchestrator(dc.configPath)
	if err != nil {
		return err
	}

	orchestrator.Disconnect(ctx)

	fmt.Fprintln(cmd.OutOrStdout(), "Disconnected. The dashboard now serves demo data.")
	return nil
}
