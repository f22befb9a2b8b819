package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/cost-compass/pkg/server"
	"github.com/de-tools/cost-compass/pkg/services/advisor"
	"github.com/de-tools/cost-compass/pkg/services/aggregate"
	costaws "github.com/de-tools/cost-compass/pkg/services/aws"
	"github.com/de-tools/cost-compass/pkg/services/config"
	"github.com/de-tools/cost-compass/pkg/services/credentials"
	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/de-tools/cost-compass/pkg/services/synthetic"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Cost Compass dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (COST_COMPASS_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	credStore := credentials.NewStore(cfg.AWS.CredentialsPath)

	orchestrator := pipeline.NewOrchestrator(pipeline.Dependencies{
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
	})

	orchestrator.Start(ctx)
	logger.Info().
		Bool("aws_connected", orchestrator.Store().State().AWSConnected).
		Msg("pipeline started")

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Orchestrator: orchestrator,
		},
	})

	return webAPI.Start()
}
