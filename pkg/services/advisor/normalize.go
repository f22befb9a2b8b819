package advisor

import (
	"fmt"

	"github.com/de-tools/cost-compass/pkg/adapters"
	"github.com/de-tools/cost-compass/pkg/models/api"
	"github.com/de-tools/cost-compass/pkg/models/domain"
)

const (
	minPriority = 1
	maxPriority = 10
)

// normalize repairs externally parsed recommendations before they enter a
// snapshot: entries without a title or description are dropped, missing ids
// are assigned by index, priorities are clamped to [1,10], and IsGeneral is
// forced false since these items derive from the account's actual data.
func normalize(parsed []api.Recommendation) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(parsed))
	for i, item := range parsed {
		if item.Title == "" || item.Description == "" {
			continue
		}

		rec := adapters.MapRecommendationApiToDomain(item)
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("ai_rec_%d", i)
		}
		if rec.Priority < minPriority {
			rec.Priority = minPriority
		}
		if rec.Priority > maxPriority {
			rec.Priority = maxPriority
		}
		rec.IsGeneral = false

		recs = append(recs, rec)
	}
	return recs
}
