package aggregate

import (
	"math/rand"
	"sync"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// TrendEstimator supplies the trend indicator and signed percent change for
// a service's records, and the period-over-period change for the whole bill.
// The aggregator itself is estimator-agnostic.
type TrendEstimator interface {
	Estimate(service string, records []domain.CostRecord) (domain.Trend, float64)
	MonthlyChange(records []domain.CostRecord) float64
}

// RandomEstimator is an explicit placeholder for a real historical
// comparison: a stable trend with a bounded pseudo-random delta, matching
// the demo behavior the dashboard shipped with. Swap in HistoricalEstimator
// once billing history is retained.
type RandomEstimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomEstimator(seed int64) *RandomEstimator {
	return &RandomEstimator{rnd: rand.New(rand.NewSource(seed))}
}

func (e *RandomEstimator) Estimate(_ string, _ []domain.CostRecord) (domain.Trend, float64) {
	return domain.TrendStable, e.delta()
}

func (e *RandomEstimator) MonthlyChange(_ []domain.CostRecord) float64 {
	return e.delta()
}

// delta is a signed percent in [-10, 10).
func (e *RandomEstimator) delta() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Float64()*20 - 10
}

// HistoricalEstimator compares the first and second half of the fetched
// period. Deltas within stableBand percent count as stable.
type HistoricalEstimator struct{}

const stableBand = 1.0

func (HistoricalEstimator) Estimate(_ string, records []domain.CostRecord) (domain.Trend, float64) {
	change := halfPeriodChange(records)
	switch {
	case change > stableBand:
		return domain.TrendUp, change
	case change < -stableBand:
		return domain.TrendDown, change
	default:
		return domain.TrendStable, change
	}
}

func (HistoricalEstimator) MonthlyChange(records []domain.CostRecord) float64 {
	return halfPeriodChange(records)
}

func halfPeriodChange(records []domain.CostRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	var min, max time.Time
	for i, rec := range records {
		if i == 0 || rec.Date.Before(min) {
			min = rec.Date
		}
		if i == 0 || rec.Date.After(max) {
			max = rec.Date
		}
	}

	mid := min.Add(max.Sub(min) / 2)
	var earlier, later float64
	for _, rec := range records {
		if rec.Date.After(mid) {
			later += rec.Amount
		} else {
			earlier += rec.Amount
		}
	}

	if earlier == 0 {
		return 0
	}
	return (later - earlier) / earlier * 100
}
