package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

// Reporter renders dashboard data to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) HandleSnapshot(snapshot domain.DashboardSnapshot) error {
	tmpl := `
Cost Dashboard ({{.Source}} data, generated {{.GeneratedAt.Format "2006-01-02 15:04"}})
Total Cost: ${{printf "%.2f" .TotalCost}}
Monthly Change: {{printf "%+.1f" .MonthlyChange}}%
Savings Opportunity: ${{printf "%.2f" .SavingsOpportunity}}
Active Alerts: {{.AlertsCount}}

=== Cost Breakdown ===
{{range .CostBreakdown}}
- {{.Service}}: ${{printf "%.2f" .Cost}} ({{printf "%.1f" .Percentage}}%, {{.Trend}} {{printf "%+.1f" .Change}}%)
{{end}}
`
	t, err := template.New("snapshot").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, snapshot)
}

func (c *Reporter) HandleRecommendations(recommendations []domain.Recommendation) error {
	tmpl := `
=== Recommendations ===
{{range .}}
[{{.Priority}}] {{.Title}} ({{.Impact}} impact, {{.Category}})
  {{.Description}}
  Estimated Savings: {{.EstimatedSavings.Currency}} {{printf "%.2f" .EstimatedSavings.Amount}}/month
  Difficulty: {{.Implementation.Difficulty}}, {{.Implementation.TimeToImplement}}
{{end}}
`
	t, err := template.New("recommendations").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, recommendations)
}
