package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cost-compass/pkg/services/advisor"
	"github.com/de-tools/cost-compass/pkg/services/aggregate"
	costaws "github.com/de-tools/cost-compass/pkg/services/aws"
	"github.com/de-tools/cost-compass/pkg/services/config"
	"github.com/de-tools/cost-compass/pkg/services/credentials"
	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/de-tools/cost-compass/pkg/services/synthetic"
)

// buildOrchestrator wires a full pipeline from the config file. Each command
// invocation builds its own; CLI runs are one-shot.
func buildOrchestrator(configPath string) (*pipeline.Orchestrator, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	credStore := credentials.NewStore(cfg.AWS.CredentialsPath)

	return pipeline.NewOrchestrator(pipeline.Dependencies{
		Credentials: credStore,
		Gateway: func(ctx context.Context) (pipeline.Gateway, error) {
			return costaws.NewExplorer(ctx, credStore)
		},
		Generator: synthetic.NewGenerator(time.Now().UnixNano()),
		Advisor: advisor.NewAdvisor(advisor.Settings{
			APIKey:    cfg.Advisor.APIKey,
			Model:     cfg.Advisor.Model,
			MaxTokens: cfg.Advisor.MaxTokens,
		}),
		Estimator: aggregate.NewRandomEstimator(time.Now().UnixNano()),
	}, pipeline.Settings{
		LookbackDays: cfg.AWS.LookbackDays,
	}), nil
}
