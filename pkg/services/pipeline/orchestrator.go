package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/aggregate"
	"github.com/de-tools/cost-compass/pkg/services/credentials"
	"github.com/de-tools/cost-compass/pkg/services/synthetic"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLookbackDays = 30

	refreshFailedMessage = "Failed to load dashboard data. Please try again."
	connectFailedMessage = "Failed to connect to AWS. Please check your credentials."

	savingsRate = 0.2
	maxAlerts   = 5
)

// Gateway is the live data source for one refresh cycle.
type Gateway interface {
	GetCostAndUsage(
		ctx context.Context,
		start, end time.Time,
		granularity domain.Granularity,
	) ([]domain.CostRecord, error)
	GetEC2Utilization(ctx context.Context) ([]domain.UsageSample, error)
}

// GatewayFactory builds a gateway from the current credential state. It is
// invoked per refresh so a newly connected credential takes effect without
// restarting the pipeline.
type GatewayFactory func(ctx context.Context) (Gateway, error)

// RecommendationEngine produces the recommendation list for a dataset.
// Implementations never fail and never return an empty list.
type RecommendationEngine interface {
	Generate(ctx context.Context, costs []domain.CostRecord, usage []domain.UsageSample) []domain.Recommendation
	GeneralRecommendations() []domain.Recommendation
}

type Dependencies struct {
	Credentials *credentials.Store
	Gateway     GatewayFactory
	Generator   *synthetic.Generator
	Advisor     RecommendationEngine
	Estimator   aggregate.TrendEstimator
}

type Settings struct {
	LookbackDays int
}

// Orchestrator coordinates one refresh cycle: choose data provenance, fetch,
// aggregate, generate recommendations, publish. The dashboard always prefers
// publishing some snapshot (live or synthetic) over an error state; only an
// unexpected failure past the data-source stage reaches the UI as an error.
type Orchestrator struct {
	store        *Store
	creds        *credentials.Store
	gateway      GatewayFactory
	generator    *synthetic.Generator
	advisor      RecommendationEngine
	estimator    aggregate.TrendEstimator
	lookbackDays int

	// Completions commit only when their generation is still the latest,
	// so a slower superseded refresh cannot overwrite newer state.
	generation atomic.Uint64
}

func NewOrchestrator(deps Dependencies, settings Settings) *Orchestrator {
	lookback := settings.LookbackDays
	if lookback <= 0 {
		lookback = defaultLookbackDays
	}

	return &Orchestrator{
		store:        NewStore(),
		creds:        deps.Credentials,
		gateway:      deps.Gateway,
		generator:    deps.Generator,
		advisor:      deps.Advisor,
		estimator:    deps.Estimator,
		lookbackDays: lookback,
	}
}

func (o *Orchestrator) Store() *Store {
	return o.store
}

// Start seeds the connected flag from the credential store and runs the
// initial refresh.
func (o *Orchestrator) Start(ctx context.Context) {
	o.store.Dispatch(SetConnected{Connected: o.creds.Has()})
	o.Refresh(ctx)
}

// Refresh runs one full pipeline cycle and publishes the result.
func (o *Orchestrator) Refresh(ctx context.Context) {
	o.doRefresh(ctx, refreshFailedMessage)
}

// Connect stores the credential, marks the account connected and refreshes.
// A refresh failure is reported with a connection-specific message; the
// credential stays stored.
func (o *Orchestrator) Connect(ctx context.Context, record domain.CredentialRecord) error {
	if err := o.creds.Set(record); err != nil {
		return err
	}

	o.store.Dispatch(SetConnected{Connected: true})
	o.doRefresh(ctx, connectFailedMessage)
	return nil
}

// Disconnect drops the credential and synchronously publishes a fresh
// synthetic snapshot; no network round trip is involved.
func (o *Orchestrator) Disconnect(ctx context.Context) {
	o.creds.Clear()

	// Invalidate any in-flight refresh before publishing.
	o.generation.Add(1)

	o.store.Dispatch(SetConnected{Connected: false})

	dataset := o.generator.Generate(time.Now())
	snapshot := dataset.Snapshot
	snapshot.Recommendations = o.advisor.GeneralRecommendations()
	o.store.Dispatch(RefreshSucceeded{Snapshot: snapshot})

	zerolog.Ctx(ctx).Info().Msg("aws disconnected, demo data published")
}

func (o *Orchestrator) doRefresh(ctx context.Context, failMessage string) {
	gen := o.generation.Add(1)
	o.store.Dispatch(BeginRefresh{})

	snapshot, err := o.buildSnapshot(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("dashboard refresh failed")
		o.commit(ctx, gen, RefreshFailed{Message: failMessage})
		return
	}

	o.commit(ctx, gen, RefreshSucceeded{Snapshot: snapshot})
}

// commit applies a refresh completion unless a newer refresh has been
// issued since.
func (o *Orchestrator) commit(ctx context.Context, gen uint64, action Action) {
	if gen != o.generation.Load() {
		zerolog.Ctx(ctx).Debug().
			Uint64("generation", gen).
			Msg("discarding superseded refresh result")
		return
	}
	o.store.Dispatch(action)
}

// buildSnapshot assembles one immutable snapshot. Data-source failures are
// contained by falling back to synthetic data; a panic in the aggregation
// or recommendation stages is the only path that surfaces as an error.
func (o *Orchestrator) buildSnapshot(ctx context.Context) (snapshot domain.DashboardSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline failure: %v", r)
		}
	}()

	logger := zerolog.Ctx(ctx)
	now := time.Now()

	if o.store.State().AWSConnected && o.creds.Has() {
		costs, usage, fetchErr := o.fetchLive(ctx, now)
		if fetchErr == nil {
			return o.assembleLive(ctx, now, costs, usage), nil
		}
		logger.Warn().Err(fetchErr).Msg("live fetch degraded, falling back to synthetic data")
	}

	dataset := o.generator.Generate(now)
	snapshot = dataset.Snapshot
	snapshot.Recommendations = o.advisor.Generate(ctx, dataset.Costs, dataset.Usage)
	return snapshot, nil
}

// fetchLive issues the cost and usage queries concurrently and joins them
// before aggregation.
func (o *Orchestrator) fetchLive(
	ctx context.Context,
	now time.Time,
) ([]domain.CostRecord, []domain.UsageSample, error) {
	gateway, err := o.gateway(ctx)
	if err != nil {
		return nil, nil, err
	}

	var (
		costs []domain.CostRecord
		usage []domain.UsageSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		costs, err = gateway.GetCostAndUsage(
			gctx, now.AddDate(0, 0, -o.lookbackDays), now, domain.GranularityDaily)
		return err
	})
	g.Go(func() error {
		var err error
		usage, err = gateway.GetEC2Utilization(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return costs, usage, nil
}

func (o *Orchestrator) assembleLive(
	ctx context.Context,
	now time.Time,
	costs []domain.CostRecord,
	usage []domain.UsageSample,
) domain.DashboardSnapshot {
	result := aggregate.Summarize(costs, o.estimator)

	return domain.DashboardSnapshot{
		TotalCost:          result.TotalCost,
		MonthlyChange:      result.MonthlyChange,
		CostBreakdown:      result.Breakdown,
		TopServices:        aggregate.TopServices(result.Breakdown, 5),
		Recommendations:    o.advisor.Generate(ctx, costs, usage),
		AlertsCount:        rand.Intn(maxAlerts),
		SavingsOpportunity: result.TotalCost * savingsRate,
		Source:             domain.SourceLive,
		GeneratedAt:        now,
	}
}
