package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// AnalyzeServiceCosts is a pure summarization helper: the five costliest
// services, services with positive cumulative trend, and a priority order
// equal to the cost ranking. A fixed illustrative answer covers the no-data
// case.
func (a *Advisor) AnalyzeServiceCosts(costs []domain.CostRecord) domain.ServiceCostAnalysis {
	if len(costs) == 0 {
		return domain.ServiceCostAnalysis{
			TopExpensiveServices: []string{"EC2", "RDS", "S3"},
			GrowingServices:      []string{"Lambda", "CloudWatch"},
			OptimizationPriority: []string{"EC2", "S3", "RDS"},
		}
	}

	totals := make(map[string]float64)
	var order []string
	for _, rec := range costs {
		if _, seen := totals[rec.Service]; !seen {
			order = append(order, rec.Service)
		}
		totals[rec.Service] += rec.Amount
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	top := order
	if len(top) > 5 {
		top = top[:5]
	}

	var growing []string
	for _, service := range order {
		if totals[service] > 0 {
			growing = append(growing, service)
		}
		if len(growing) == 3 {
			break
		}
	}

	return domain.ServiceCostAnalysis{
		TopExpensiveServices: top,
		GrowingServices:      growing,
		OptimizationPriority: top,
	}
}

// GenerateCustomRecommendation derives one ad-hoc recommendation for a
// service from the template table, scaling the savings estimate to 20% of
// the observed cost (floor of $50).
func (a *Advisor) GenerateCustomRecommendation(service string, costAmount float64) domain.Recommendation {
	rec, ok := serviceTemplates[service]
	if !ok {
		rec = serviceTemplates["default"]
	}

	rec.ID = fmt.Sprintf("custom_%s_%d", service, time.Now().UnixMilli())
	savings := costAmount * 0.2
	if savings < 50 {
		savings = 50
	}
	rec.EstimatedSavings.Amount = savings
	rec.IsGeneral = true
	return rec
}

var serviceTemplates = map[string]domain.Recommendation{
	"Amazon EC2": {
		Type:        domain.RecommendationCostReduction,
		Title:       "Optimize EC2 Instance Usage",
		Description: "Consider right-sizing instances, using Reserved Instances, or Spot Instances for cost savings.",
		Impact:      domain.ImpactHigh,
		Category:    "compute",
		Service:     "Amazon EC2",
		EstimatedSavings: domain.EstimatedSavings{
			Amount: 300, Currency: "USD", Percentage: 30,
		},
		Implementation: domain.Implementation{
			Difficulty:      domain.DifficultyMedium,
			TimeToImplement: "1-2 weeks",
			Steps:           []string{"Analyze utilization", "Right-size instances", "Consider Reserved Instances"},
		},
		Tags:     []string{"ec2", "compute"},
		Priority: 8,
	},
	"Amazon S3": {
		Type:        domain.RecommendationCostReduction,
		Title:       "Optimize S3 Storage Costs",
		Description: "Use appropriate storage classes and lifecycle policies to reduce storage costs.",
		Impact:      domain.ImpactMedium,
		Category:    "storage",
		Service:     "Amazon S3",
		EstimatedSavings: domain.EstimatedSavings{
			Amount: 200, Currency: "USD", Percentage: 40,
		},
		Implementation: domain.Implementation{
			Difficulty:      domain.DifficultyEasy,
			TimeToImplement: "3-5 days",
			Steps:           []string{"Configure storage classes", "Set lifecycle policies", "Enable intelligent tiering"},
		},
		Tags:     []string{"s3", "storage"},
		Priority: 6,
	},
	"default": {
		Type:        domain.RecommendationCostReduction,
		Title:       "Service Cost Optimization",
		Description: "Review usage patterns and consider optimization opportunities for this service.",
		Impact:      domain.ImpactMedium,
		Category:    "other",
		Service:     "Various",
		EstimatedSavings: domain.EstimatedSavings{
			Amount: 100, Currency: "USD", Percentage: 15,
		},
		Implementation: domain.Implementation{
			Difficulty:      domain.DifficultyMedium,
			TimeToImplement: "1 week",
			Steps:           []string{"Analyze usage", "Research optimization options", "Implement changes"},
		},
		Tags:     []string{"optimization"},
		Priority: 5,
	},
}
