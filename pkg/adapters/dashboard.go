package adapters

import (
	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/models/domain"
)

func MapServiceCostDomainToApi(s domain.ServiceCostSummary) api.ServiceCost {
	return api.ServiceCost{
		Service:    s.Service,
		Cost:       s.Cost,
		Percentage: s.Percentage,
		Trend:      string(s.Trend),
		Change:     s.Change,
	}
}

func MapRecommendationDomainToApi(rec domain.Recommendation) api.Recommendation {
	return api.Recommendation{
		ID:          rec.ID,
		Type:        string(rec.Type),
		Title:       rec.Title,
		Description: rec.Description,
		Impact:      string(rec.Impact),
		Category:    rec.Category,
		Service:     rec.Service,
		EstimatedSavings: api.EstimatedSavings{
			Amount:     rec.EstimatedSavings.Amount,
			Currency:   rec.EstimatedSavings.Currency,
			Percentage: rec.EstimatedSavings.Percentage,
		},
		Implementation: api.Implementation{
			Difficulty:      string(rec.Implementation.Difficulty),
			TimeToImplement: rec.Implementation.TimeToImplement,
			Steps:           rec.Implementation.Steps,
		},
		Tags:      rec.Tags,
		Priority:  rec.Priority,
		IsGeneral: rec.IsGeneral,
	}
}

func MapRecommendationApiToDomain(rec api.Recommendation) domain.Recommendation {
	return domain.Recommendation{
		ID:          rec.ID,
		Type:        domain.RecommendationType(rec.Type),
		Title:       rec.Title,
		Description: rec.Description,
		Impact:      domain.Impact(rec.Impact),
		Category:    rec.Category,
		Service:     rec.Service,
		EstimatedSavings: domain.EstimatedSavings{
			Amount:     rec.EstimatedSavings.Amount,
			Currency:   rec.EstimatedSavings.Currency,
			Percentage: rec.EstimatedSavings.Percentage,
		},
		Implementation: domain.Implementation{
			Difficulty:      domain.Difficulty(rec.Implementation.Difficulty),
			TimeToImplement: rec.Implementation.TimeToImplement,
			Steps:           rec.Implementation.Steps,
		},
		Tags:      rec.Tags,
		Priority:  rec.Priority,
		IsGeneral: rec.IsGeneral,
	}
}

func MapSnapshotDomainToApi(s domain.DashboardSnapshot) api.DashboardSnapshot {
	breakdown := make([]api.ServiceCost, 0, len(s.CostBreakdown))
	for _, svc := range s.CostBreakdown {
		breakdown = append(breakdown, MapServiceCostDomainToApi(svc))
	}

	top := make([]api.ServiceCost, 0, len(s.TopServices))
	for _, svc := range s.TopServices {
		top = append(top, MapServiceCostDomainToApi(svc))
	}

	recs := make([]api.Recommendation, 0, len(s.Recommendations))
	for _, rec := range s.Recommendations {
		recs = append(recs, MapRecommendationDomainToApi(rec))
	}

	return api.DashboardSnapshot{
		TotalCost:          s.TotalCost,
		MonthlyChange:      s.MonthlyChange,
		CostBreakdown:      breakdown,
		TopServices:        top,
		Recommendations:    recs,
		AlertsCount:        s.AlertsCount,
		SavingsOpportunity: s.SavingsOpportunity,
		Source:             string(s.Source),
		GeneratedAt:        s.GeneratedAt,
	}
}

func MapCredentialsApiToDomain(c api.Credentials) domain.CredentialRecord {
	return domain.CredentialRecord{
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		Region:          c.Region,
		SessionToken:    c.SessionToken,
	}
}
