package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/de-tools/cost-compass/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type RecommendationsCmd struct {
	configPath string
	reporter   *export.Reporter
}

func NewRecommendationsCmd(reporter *export.Reporter) *cobra.Command {
	rc := &RecommendationsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "recommendations",
		Short: "Run the pipeline once and print cost optimization recommendations",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the config file")

	return cmd
}

func (rc *RecommendationsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	orchestrator, err := buildOrchestrator(rc.configPath)
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

	return rc.reporter.HandleRecommendations(state.Snapshot.Recommendations)
}
