package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/de-tools/cost-compass/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type SnapshotCmd struct {
	configPath string
	reporter   *export.Reporter
}

func NewSnapshotCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SnapshotCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run the pipeline once and print the dashboard snapshot",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to the config file")

	return cmd
}

func (sc *SnapshotCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	orchestrator, err := buildOrchestrator(sc.configPath)
	if err != nil {
		return err
	}

	orchestrator.Start(ctx)

	state := orchestrator.Store().State()
	if state.Status == pipeline.StatusError {
		return fmt.Errorf("refresh failed: %s", state.ErrorMessage)
	}
	if state.Snapshot == nil {
		return fmt.Errorf("no snapshot available")
	}

	return sc.reporter.HandleSnapshot(*state.Snapshot)
}
