package domain

type RecommendationType string

const (
	RecommendationCostReduction RecommendationType = "cost_reduction"
	RecommendationPerformance   RecommendationType = "performance"
	RecommendationSecurity      RecommendationType = "security"
	RecommendationGeneral       RecommendationType = "general"
)

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type EstimatedSavings struct {
	Amount     float64
	Currency   string
	Percentage float64
}

type Implementation struct {
	Difficulty      Difficulty
	TimeToImplement string
	Steps           []string
}

// Recommendation is one actionable cost-optimization suggestion. Priority
// (1-10, higher first) drives display order; IsGeneral marks catalog items
// not derived from the account's actual data.
type Recommendation struct {
	ID               string
	Type             RecommendationType
	Title            string
	Description      string
	Impact           Impact
	Category         string
	Service          string
	EstimatedSavings EstimatedSavings
	Implementation   Implementation
	Tags             []string
	Priority         int
	IsGeneral        bool
}

// ServiceCostAnalysis is the advisor's pure summarization of a cost dataset.
type ServiceCostAnalysis struct {
	TopExpensiveServices []string
	GrowingServices      []string
	OptimizationPriority []string
}
