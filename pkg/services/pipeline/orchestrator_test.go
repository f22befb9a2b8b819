package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/advisor"
	"github.com/de-tools/cost-compass/pkg/services/aggregate"
	"github.com/de-tools/cost-compass/pkg/services/credentials"
	"github.com/de-tools/cost-compass/pkg/services/synthetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) GetCostAndUsage(
	ctx context.Context,
	start, end time.Time,
	granularity domain.Granularity,
) ([]domain.CostRecord, error) {
	args := m.Called(ctx, start, end, granularity)
	if records := args.Get(0); records != nil {
		return records.([]domain.CostRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) GetEC2Utilization(ctx context.Context) ([]domain.UsageSample, error) {
	args := m.Called(ctx)
	if samples := args.Get(0); samples != nil {
		return samples.([]domain.UsageSample), args.Error(1)
	}
	return nil, args.Error(1)
}

// panickingEngine stands in for an advisor whose reasoning stage blows up.
type panickingEngine struct{}

func (panickingEngine) Generate(context.Context, []domain.CostRecord, []domain.UsageSample) []domain.Recommendation {
	panic("advisor exploded")
}

func (panickingEngine) GeneralRecommendations() []domain.Recommendation {
	panic("advisor exploded")
}

func validRecord() domain.CredentialRecord {
	return domain.CredentialRecord{
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		Region:          "us-east-1",
	}
}

type orchestratorOption func(*Dependencies, *Settings)

func withGateway(factory GatewayFactory) orchestratorOption {
	return func(deps *Dependencies, _ *Settings) {
		deps.Gateway = factory
	}
}

func withAdvisor(engine RecommendationEngine) orchestratorOption {
	return func(deps *Dependencies, _ *Settings) {
		deps.Advisor = engine
	}
}

func newTestOrchestrator(t *testing.T, opts ...orchestratorOption) (*Orchestrator, *credentials.Store) {
	t.Helper()

	creds := credentials.NewStore(filepath.Join(t.TempDir(), "credentials"))
	deps := Dependencies{
		Credentials: creds,
		Gateway: func(ctx context.Context) (Gateway, error) {
			return nil, errors.New("no gateway configured")
		},
		Generator: synthetic.NewGenerator(7),
		Advisor:   advisor.NewAdvisor(advisor.Settings{}),
		Estimator: aggregate.NewRandomEstimator(7),
	}
	settings := Settings{}
	for _, opt := range opts {
		opt(&deps, &settings)
	}
	return NewOrchestrator(deps, settings), creds
}

func TestOrchestrator_StartWithoutCredentials(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	o.Start(context.Background())

	state := o.Store().State()
	assert.Equal(t, StatusReady, state.Status)
	assert.False(t, state.AWSConnected)

	require.NotNil(t, state.Snapshot)
	snapshot := state.Snapshot
	assert.Equal(t, domain.SourceSynthetic, snapshot.Source)
	assert.Len(t, snapshot.CostBreakdown, 7)
	assert.InEpsilon(t, 2763.70, snapshot.TotalCost, 0.06)

	require.Len(t, snapshot.Recommendations, 8)
	for _, rec := range snapshot.Recommendations {
		assert.True(t, rec.IsGeneral, "demo recommendations come from the general catalog")
	}
}

func TestOrchestrator_ConnectThenLiveRefresh(t *testing.T) {
	now := time.Now()
	gateway := &mockGateway{}
	gateway.On("GetCostAndUsage", mock.Anything, mock.Anything, mock.Anything, domain.GranularityDaily).
		Return([]domain.CostRecord{
			{Date: now.AddDate(0, 0, -2), Amount: 300, Currency: "USD", Service: "Amazon EC2"},
			{Date: now.AddDate(0, 0, -1), Amount: 100, Currency: "USD", Service: "Amazon S3"},
		}, nil)
	gateway.On("GetEC2Utilization", mock.Anything).
		Return([]domain.UsageSample{
			{Service: "AWS/EC2", Metric: "CPUUtilization", Value: 42.0, Unit: "Percent", Timestamp: now},
		}, nil)

	o, _ := newTestOrchestrator(t, withGateway(func(ctx context.Context) (Gateway, error) {
		return gateway, nil
	}))

	err := o.Connect(context.Background(), validRecord())
	require.NoError(t, err)

	state := o.Store().State()
	assert.Equal(t, StatusReady, state.Status)
	assert.True(t, state.AWSConnected)

	require.NotNil(t, state.Snapshot)
	snapshot := state.Snapshot
	assert.Equal(t, domain.SourceLive, snapshot.Source)
	assert.Equal(t, 400.0, snapshot.TotalCost)
	assert.Equal(t, 80.0, snapshot.SavingsOpportunity)
	require.Len(t, snapshot.CostBreakdown, 2)
	assert.Equal(t, "Amazon EC2", snapshot.CostBreakdown[0].Service)
	assert.NotEmpty(t, snapshot.Recommendations)

	gateway.AssertExpectations(t)
}

func TestOrchestrator_ConnectRejectsIncompleteRecord(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	err := o.Connect(context.Background(), domain.CredentialRecord{AccessKeyID: "AKIAEXAMPLE"})

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, StatusIdle, o.Store().State().Status)
	assert.False(t, o.Store().State().AWSConnected)
}

func TestOrchestrator_LiveFetchFailureFallsBackToSynthetic(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("GetCostAndUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled"))
	gateway.On("GetEC2Utilization", mock.Anything).
		Return(nil, errors.New("throttled")).Maybe()

	o, _ := newTestOrchestrator(t, withGateway(func(ctx context.Context) (Gateway, error) {
		return gateway, nil
	}))

	require.NoError(t, o.Connect(context.Background(), validRecord()))

	state := o.Store().State()
	assert.Equal(t, StatusReady, state.Status)
	assert.True(t, state.AWSConnected, "a degraded fetch does not disconnect the account")

	require.NotNil(t, state.Snapshot)
	assert.Equal(t, domain.SourceSynthetic, state.Snapshot.Source)
	assert.Len(t, state.Snapshot.CostBreakdown, 7)
}

func TestOrchestrator_GatewayFactoryFailureFallsBackToSynthetic(t *testing.T) {
	o, _ := newTestOrchestrator(t, withGateway(func(ctx context.Context) (Gateway, error) {
		return nil, errors.New("sts unavailable")
	}))

	require.NoError(t, o.Connect(context.Background(), validRecord()))

	state := o.Store().State()
	assert.Equal(t, StatusReady, state.Status)
	require.NotNil(t, state.Snapshot)
	assert.Equal(t, domain.SourceSynthetic, state.Snapshot.Source)
}

func TestOrchestrator_Disconnect(t *testing.T) {
	o, creds := newTestOrchestrator(t)
	require.NoError(t, creds.Set(validRecord()))
	o.Start(context.Background())
	require.True(t, o.Store().State().AWSConnected)

	o.Disconnect(context.Background())

	state := o.Store().State()
	assert.Equal(t, StatusReady, state.Status)
	assert.False(t, state.AWSConnected)
	assert.False(t, creds.Has())

	require.NotNil(t, state.Snapshot)
	assert.Equal(t, domain.SourceSynthetic, state.Snapshot.Source)
	assert.Len(t, state.Snapshot.CostBreakdown, 7)
	require.Len(t, state.Snapshot.Recommendations, 8)
	assert.True(t, state.Snapshot.Recommendations[0].IsGeneral)
}

func TestOrchestrator_PipelineFailureSurfacesError(t *testing.T) {
	o, _ := newTestOrchestrator(t, withAdvisor(panickingEngine{}))

	o.Refresh(context.Background())

	state := o.Store().State()
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Failed to load dashboard data. Please try again.", state.ErrorMessage)
}

func TestOrchestrator_ConnectFailureUsesConnectMessage(t *testing.T) {
	o, creds := newTestOrchestrator(t, withAdvisor(panickingEngine{}))

	require.NoError(t, o.Connect(context.Background(), validRecord()))

	state := o.Store().State()
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Failed to connect to AWS. Please check your credentials.", state.ErrorMessage)
	assert.True(t, creds.Has(), "the credential stays stored after a failed refresh")
}

func TestOrchestrator_SupersededRefreshIsDiscarded(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	stale := o.generation.Add(1)
	o.generation.Add(1)

	o.commit(context.Background(), stale, RefreshFailed{Message: "stale"})

	state := o.Store().State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Empty(t, state.ErrorMessage)
}
