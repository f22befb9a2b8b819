package aggregate

import (
	"testing"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedEstimator returns the same trend for everything, keeping test
// expectations deterministic.
type fixedEstimator struct{}

func (fixedEstimator) Estimate(string, []domain.CostRecord) (domain.Trend, float64) {
	return domain.TrendStable, 1.5
}

func (fixedEstimator) MonthlyChange([]domain.CostRecord) float64 { return 2.5 }

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize_GroupsAndSums(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 10, Currency: "USD", Service: "Amazon EC2"},
		{Date: day(2), Amount: 30, Currency: "USD", Service: "Amazon EC2"},
		{Date: day(1), Amount: 60, Currency: "USD", Service: "Amazon RDS"},
	}

	result := Summarize(records, fixedEstimator{})

	assert.Equal(t, 100.0, result.TotalCost)
	assert.Equal(t, 2.5, result.MonthlyChange)
	require.Len(t, result.Breakdown, 2)

	assert.Equal(t, "Amazon RDS", result.Breakdown[0].Service)
	assert.Equal(t, 60.0, result.Breakdown[0].Cost)
	assert.Equal(t, 60.0, result.Breakdown[0].Percentage)
	assert.Equal(t, "Amazon EC2", result.Breakdown[1].Service)
	assert.Equal(t, 40.0, result.Breakdown[1].Cost)
	assert.Equal(t, domain.TrendStable, result.Breakdown[1].Trend)
	assert.Equal(t, 1.5, result.Breakdown[1].Change)
}

func TestSummarize_PercentagesSumTo100(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 33.33, Service: "A"},
		{Date: day(1), Amount: 41.17, Service: "B"},
		{Date: day(1), Amount: 0.5, Service: "C"},
		{Date: day(1), Amount: 125.0, Service: "D"},
	}

	result := Summarize(records, fixedEstimator{})

	var sumCost, sumPct float64
	for _, svc := range result.Breakdown {
		sumCost += svc.Cost
		sumPct += svc.Percentage
	}
	assert.InDelta(t, result.TotalCost, sumCost, 1e-9)
	assert.InDelta(t, 100, sumPct, 0.1)
}

func TestSummarize_ZeroTotal(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 0, Service: "A"},
		{Date: day(1), Amount: 0, Service: "B"},
	}

	result := Summarize(records, fixedEstimator{})
	assert.Equal(t, 0.0, result.TotalCost)
	for _, svc := range result.Breakdown {
		assert.Equal(t, 0.0, svc.Percentage)
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	result := Summarize(nil, fixedEstimator{})
	assert.Equal(t, 0.0, result.TotalCost)
	assert.Empty(t, result.Breakdown)
	assert.Empty(t, TopServices(result.Breakdown, 5))
}

func TestSummarize_TiesPreserveFirstSeenOrder(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 10, Service: "First"},
		{Date: day(1), Amount: 10, Service: "Second"},
		{Date: day(1), Amount: 10, Service: "Third"},
	}

	result := Summarize(records, fixedEstimator{})
	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "First", result.Breakdown[0].Service)
	assert.Equal(t, "Second", result.Breakdown[1].Service)
	assert.Equal(t, "Third", result.Breakdown[2].Service)
}

func TestTopServices(t *testing.T) {
	records := []domain.CostRecord{
		{Date: day(1), Amount: 70, Service: "A"},
		{Date: day(1), Amount: 60, Service: "B"},
		{Date: day(1), Amount: 50, Service: "C"},
		{Date: day(1), Amount: 40, Service: "D"},
		{Date: day(1), Amount: 30, Service: "E"},
		{Date: day(1), Amount: 20, Service: "F"},
		{Date: day(1), Amount: 10, Service: "G"},
	}

	result := Summarize(records, fixedEstimator{})
	top := TopServices(result.Breakdown, 5)
	require.Len(t, top, 5)
	assert.Equal(t, result.Breakdown[:5], top)
	assert.Equal(t, "A", top[0].Service)
	assert.Equal(t, "E", top[4].Service)
}

func TestRandomEstimator_Bounded(t *testing.T) {
	est := NewRandomEstimator(99)
	for i := 0; i < 100; i++ {
		trend, change := est.Estimate("Amazon EC2", nil)
		assert.Equal(t, domain.TrendStable, trend)
		assert.GreaterOrEqual(t, change, -10.0)
		assert.Less(t, change, 10.0)
	}
}

func TestHistoricalEstimator(t *testing.T) {
	up := []domain.CostRecord{
		{Date: day(1), Amount: 10, Service: "A"},
		{Date: day(30), Amount: 20, Service: "A"},
	}
	trend, change := HistoricalEstimator{}.Estimate("A", up)
	assert.Equal(t, domain.TrendUp, trend)
	assert.InDelta(t, 100, change, 1e-9)

	down := []domain.CostRecord{
		{Date: day(1), Amount: 20, Service: "A"},
		{Date: day(30), Amount: 10, Service: "A"},
	}
	trend, change = HistoricalEstimator{}.Estimate("A", down)
	assert.Equal(t, domain.TrendDown, trend)
	assert.InDelta(t, -50, change, 1e-9)

	trend, change = HistoricalEstimator{}.Estimate("A", nil)
	assert.Equal(t, domain.TrendStable, trend)
	assert.Equal(t, 0.0, change)
}
