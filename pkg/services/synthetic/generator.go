package synthetic

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// Base catalog of demo services. Costs sum to 2763.70 and shares to 100%
// before jitter; trend and change are fixed illustrative values.
var baseServices = []domain.ServiceCostSummary{
	{Service: "Amazon EC2", Cost: 1250.75, Trend: domain.TrendUp, Change: 8.5},
	{Service: "Amazon RDS", Cost: 650.30, Trend: domain.TrendDown, Change: -2.1},
	{Service: "Amazon S3", Cost: 380.90, Trend: domain.TrendStable, Change: 0.3},
	{Service: "Amazon CloudWatch", Cost: 180.25, Trend: domain.TrendUp, Change: 15.2},
	{Service: "AWS Lambda", Cost: 120.80, Trend: domain.TrendUp, Change: 22.1},
	{Service: "Amazon CloudFront", Cost: 95.50, Trend: domain.TrendDown, Change: -5.8},
	{Service: "Other Services", Cost: 85.20, Trend: domain.TrendStable, Change: 1.2},
}

const (
	monthlyChange      = 5.8
	alertsCount        = 3
	savingsOpportunity = 850.50
	costJitter         = 0.05
)

// Dataset is one generated demo cycle: a snapshot skeleton (no
// recommendations yet) plus the raw records the advisor consumes.
type Dataset struct {
	Snapshot domain.DashboardSnapshot
	Costs    []domain.CostRecord
	Usage    []domain.UsageSample
}

// Generator produces a believable cost/usage fixture when no live source is
// usable. Same seed, same output; no I/O; never fails. Safe for concurrent
// use: refreshes can overlap.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) Generate(now time.Time) Dataset {
	breakdown := make([]domain.ServiceCostSummary, len(baseServices))
	copy(breakdown, baseServices)

	factors := g.jitterFactors(len(breakdown))

	var total float64
	for i := range breakdown {
		breakdown[i].Cost *= factors[i]
		total += breakdown[i].Cost
	}

	for i := range breakdown {
		if total > 0 {
			breakdown[i].Percentage = breakdown[i].Cost / total * 100
		}
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Cost > breakdown[j].Cost
	})

	top := breakdown
	if len(top) > 5 {
		top = top[:5]
	}

	costs := make([]domain.CostRecord, 0, len(breakdown))
	for _, svc := range breakdown {
		costs = append(costs, domain.CostRecord{
			Date:     now,
			Amount:   svc.Cost,
			Currency: "USD",
			Service:  svc.Service,
		})
	}

	usage := []domain.UsageSample{
		{Service: "AWS/EC2", Metric: "CPUUtilization", Value: 25.5, Unit: "Percent", Timestamp: now},
		{Service: "AWS/RDS", Metric: "DatabaseConnections", Value: 12, Unit: "Count", Timestamp: now},
		{Service: "AWS/S3", Metric: "BucketRequests", Value: 1250, Unit: "Count/Second", Timestamp: now},
	}

	return Dataset{
		Snapshot: domain.DashboardSnapshot{
			TotalCost:          total,
			MonthlyChange:      monthlyChange,
			CostBreakdown:      breakdown,
			TopServices:        top,
			AlertsCount:        alertsCount,
			SavingsOpportunity: savingsOpportunity,
			Source:             domain.SourceSynthetic,
			GeneratedAt:        now,
		},
		Costs: costs,
		Usage: usage,
	}
}

// jitterFactors draws one day-to-day variance factor per service; costs
// never go negative.
func (g *Generator) jitterFactors(n int) []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	factors := make([]float64, n)
	for i := range factors {
		factor := 1 + (g.rnd.Float64()*2-1)*costJitter
		if factor < 0 {
			factor = 0
		}
		factors[i] = factor
	}
	return factors
}
