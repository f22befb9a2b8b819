package advisor

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// Caps protect the reasoning call's input size.
const (
	maxSummaryMetrics = 10
	maxDetailRecords  = 20
)

const systemPrompt = `You are an AWS cost optimization expert. Analyze the provided cost and usage data to generate specific, actionable recommendations for reducing AWS costs while maintaining performance and reliability.

Return your response as a JSON array of recommendations with the following structure:
{
  "id": "unique_id",
  "type": "cost_reduction" | "performance" | "security" | "general",
  "title": "Brief title",
  "description": "Detailed description",
  "impact": "low" | "medium" | "high",
  "category": "compute" | "storage" | "network" | "database" | "other",
  "service": "AWS service name",
  "estimatedSavings": {
    "amount": number,
    "currency": "USD",
    "percentage": number
  },
  "implementation": {
    "difficulty": "easy" | "medium" | "hard",
    "timeToImplement": "time estimate",
    "steps": ["step1", "step2", ...]
  },
  "tags": ["tag1", "tag2"],
  "priority": number (1-10),
  "isGeneral": false
}

Focus on practical, implementable recommendations based on the actual data provided.`

// buildPrompt summarizes the current cycle's dataset: total cost, the five
// costliest services, and a capped sample of usage metrics and raw records.
func buildPrompt(costs []domain.CostRecord, usage []domain.UsageSample) string {
	var totalCost float64
	perService := make(map[string]float64)
	for _, rec := range costs {
		totalCost += rec.Amount
		perService[rec.Service] += rec.Amount
	}

	type serviceCost struct {
		service string
		amount  float64
	}
	ranked := make([]serviceCost, 0, len(perService))
	for service, amount := range perService {
		ranked = append(ranked, serviceCost{service, amount})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].amount > ranked[j].amount })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	topServices := make([]string, 0, len(ranked))
	for _, sc := range ranked {
		topServices = append(topServices, fmt.Sprintf("%s: $%.2f", sc.service, sc.amount))
	}

	metricLines := make([]string, 0, maxSummaryMetrics)
	for _, sample := range usage {
		if len(metricLines) == maxSummaryMetrics {
			break
		}
		metricLines = append(metricLines,
			fmt.Sprintf("%s %s: %.2f %s", sample.Service, sample.Metric, sample.Value, sample.Unit))
	}

	costDetail, _ := json.MarshalIndent(capCosts(costs), "", "  ")
	usageDetail, _ := json.MarshalIndent(capUsage(usage), "", "  ")

	return fmt.Sprintf(`Analyze the following AWS cost and usage data to provide optimization recommendations:

COST SUMMARY:
- Total monthly cost: $%.2f
- Top services by cost: %s

USAGE METRICS:
%s

DETAILED COST DATA:
%s

DETAILED USAGE DATA:
%s

Please provide 5-8 specific optimization recommendations based on this data. Focus on:
1. Services with highest costs
2. Underutilized resources
3. Potential architecture improvements
4. Reserved instance opportunities
5. Storage optimization
6. Network optimization

Prioritize recommendations by potential savings and ease of implementation.`,
		totalCost,
		strings.Join(topServices, ", "),
		strings.Join(metricLines, ", "),
		costDetail,
		usageDetail,
	)
}

func capCosts(costs []domain.CostRecord) []domain.CostRecord {
	if len(costs) > maxDetailRecords {
		return costs[:maxDetailRecords]
	}
	return costs
}

func capUsage(usage []domain.UsageSample) []domain.UsageSample {
	if len(usage) > maxDetailRecords {
		return usage[:maxDetailRecords]
	}
	return usage
}
