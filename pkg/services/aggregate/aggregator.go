package aggregate

import (
	"sort"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// Result is a normalized per-service cost breakdown. The breakdown is
// ordered descending by cost; Sum(Cost) equals TotalCost by construction.
type Result struct {
	TotalCost     float64
	MonthlyChange float64
	Breakdown     []domain.ServiceCostSummary
}

// Summarize groups raw cost records by service, sums amounts and attaches
// trend data from the estimator. Percentage is defined as 0 when the total
// is 0. Ties in cost preserve first-seen service order.
func Summarize(records []domain.CostRecord, estimator TrendEstimator) Result {
	byService := make(map[string][]domain.CostRecord)
	var order []string
	for _, rec := range records {
		if _, seen := byService[rec.Service]; !seen {
			order = append(order, rec.Service)
		}
		byService[rec.Service] = append(byService[rec.Service], rec)
	}

	var total float64
	breakdown := make([]domain.ServiceCostSummary, 0, len(order))
	for _, service := range order {
		var cost float64
		for _, rec := range byService[service] {
			cost += rec.Amount
		}
		total += cost

		trend, change := estimator.Estimate(service, byService[service])
		breakdown = append(breakdown, domain.ServiceCostSummary{
			Service: service,
			Cost:    cost,
			Trend:   trend,
			Change:  change,
		})
	}

	for i := range breakdown {
		if total > 0 {
			breakdown[i].Percentage = breakdown[i].Cost / total * 100
		}
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Cost > breakdown[j].Cost
	})

	return Result{
		TotalCost:     total,
		MonthlyChange: estimator.MonthlyChange(records),
		Breakdown:     breakdown,
	}
}

// TopServices returns the first n entries of an already ordered breakdown.
func TopServices(breakdown []domain.ServiceCostSummary, n int) []domain.ServiceCostSummary {
	if len(breakdown) < n {
		n = len(breakdown)
	}
	return breakdown[:n]
}
