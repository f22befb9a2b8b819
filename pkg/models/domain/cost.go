package domain

import "time"

// Granularity controls the bucketing of billing query results.
type Granularity string

const (
	GranularityDaily   Granularity = "DAILY"
	GranularityMonthly Granularity = "MONTHLY"
)

// CostRecord is one raw billing line item: the cost attributed to a single
// service for a single day (or month). Records exist for one refresh cycle
// only and are consumed by the aggregator.
type CostRecord struct {
	Date     time.Time
	Amount   float64
	Currency string
	Service  string
	Region   string
}

// UsageSample is one monitoring datapoint, paired with the cost records of
// the same refresh cycle.
type UsageSample struct {
	Service   string
	Metric    string
	Value     float64
	Unit      string
	Timestamp time.Time
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ServiceCostSummary aggregates all cost records of one service.
// Percentage is the service's share of the snapshot total, Change the signed
// percent delta against the previous period.
type ServiceCostSummary struct {
	Service    string
	Cost       float64
	Percentage float64
	Trend      Trend
	Change     float64
}

// SnapshotSource labels the provenance of a snapshot's data.
type SnapshotSource string

const (
	SourceLive      SnapshotSource = "live"
	SourceSynthetic SnapshotSource = "synthetic"
)

// DashboardSnapshot is one immutable, fully aggregated dashboard result.
// A refresh always produces a whole new snapshot; consumers never observe a
// partially populated one.
type DashboardSnapshot struct {
	TotalCost          float64
	MonthlyChange      float64
	CostBreakdown      []ServiceCostSummary
	TopServices        []ServiceCostSummary
	Recommendations    []Recommendation
	AlertsCount        int
	SavingsOpportunity float64
	Source             SnapshotSource
	GeneratedAt        time.Time
}
