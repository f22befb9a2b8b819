package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/pipeline"
	"github.com/spf13/cobra"
)

type ConnectCmd struct {
	configPath      string
	accessKeyID     string
	secretAccessKey string
	region          string
	sessionToken    string
}

func NewConnectCmd() *cobra.Command {
	cc := &ConnectCmd{}
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Store AWS credentials and verify live data access",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the config file")
	cmd.Flags().StringVar(&cc.accessKeyID, "access-key-id", "", "AWS access key id")
	cmd.Flags().StringVar(&cc.secretAccessKey, "secret-access-key", "", "AWS secret access key")
	cmd.Flags().StringVar(&cc.region, "region", "", "AWS region")
	cmd.Flags().StringVar(&cc.sessionToken, "session-token", "", "AWS session token (optional)")

	_ = cmd.MarkFlagRequired("access-key-id")
	_ = cmd.MarkFlagRequired("secret-access-key")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func (cc *ConnectCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	orchestrator, err := buildOrchestrator(cc.configPath)
	if err != nil {
		return err
	}

	record := domain.CredentialRecord{
		AccessKeyID:     cc.accessKeyID,
		SecretAccessKey: cc.secretAccessKey,
		Region:          cc.region,
		SessionToken:    cc.sessionToken,
	}

	if err := orchestrator.Connect(ctx, record); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	state := orchestrator.Store().State()
	if state.Status == pipeline.StatusError {
		return fmt.Errorf("credentials stored, but refresh failed: %s", state.ErrorMessage)
	}

	source := "unknown"
	if state.Snapshot != nil {
		source = string(state.Snapshot.Source)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Connected. Dashboard refreshed with %s data.\n", source)
	return nil
}
