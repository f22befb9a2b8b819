package api

import "time"

// Wire shapes for the dashboard API. Field names follow the published
// dashboard contract, which the UI and the reasoning service both use.

type ServiceCost struct {
	Service    string  `json:"service"`
	Cost       float64 `json:"cost"`
	Percentage float64 `json:"percentage"`
	Trend      string  `json:"trend"`
	Change     float64 `json:"change"`
}

type EstimatedSavings struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Percentage float64 `json:"percentage"`
}

type Implementation struct {
	Difficulty      string   `json:"difficulty"`
	TimeToImplement string   `json:"timeToImplement"`
	Steps           []string `json:"steps"`
}

type Recommendation struct {
	ID               string           `json:"id"`
	Type             string           `json:"type"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Impact           string           `json:"impact"`
	Category         string           `json:"category"`
	Service          string           `json:"service"`
	EstimatedSavings EstimatedSavings `json:"estimatedSavings"`
	Implementation   Implementation   `json:"implementation"`
	Tags             []string         `json:"tags"`
	Priority         int              `json:"priority"`
	IsGeneral        bool             `json:"isGeneral"`
}

type DashboardSnapshot struct {
	TotalCost          float64          `json:"totalCost"`
	MonthlyChange      float64          `json:"monthlyChange"`
	CostBreakdown      []ServiceCost    `json:"costBreakdown"`
	TopServices        []ServiceCost    `json:"topServices"`
	Recommendations    []Recommendation `json:"recommendations"`
	AlertsCount        int              `json:"alertsCount"`
	SavingsOpportunity float64          `json:"savingsOpportunity"`
	Source             string           `json:"source"`
	GeneratedAt        time.Time        `json:"generatedAt"`
}

type DashboardState struct {
	Status       string             `json:"status"`
	AWSConnected bool               `json:"awsConnected"`
	Snapshot     *DashboardSnapshot `json:"snapshot,omitempty"`
	Error        string             `json:"error,omitempty"`
}

type Credentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	Region          string `json:"region"`
	SessionToken    string `json:"sessionToken,omitempty"`
}
