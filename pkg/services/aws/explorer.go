package aws

import (
	"context"
	"sort"
	"strconv"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/de-tools/cost-compass/pkg/models/domain"
	"github.com/de-tools/cost-compass/pkg/services/credentials"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type costExplorerAPI interface {
	GetCostAndUsage(
		ctx context.Context,
		params *costexplorer.GetCostAndUsageInput,
		optFns ...func(*costexplorer.Options),
	) (*costexplorer.GetCostAndUsageOutput, error)
}

type cloudWatchAPI interface {
	GetMetricStatistics(
		ctx context.Context,
		params *cloudwatch.GetMetricStatisticsInput,
		optFns ...func(*cloudwatch.Options),
	) (*cloudwatch.GetMetricStatisticsOutput, error)
}

// Explorer is the live data gateway: per-service billing records from Cost
// Explorer and utilization samples from CloudWatch. Fetch errors are logged
// as warnings and reported as TransientFetchError; the orchestrator treats a
// failed combined fetch as "fall back to synthetic data".
type Explorer struct {
	ce costExplorerAPI
	cw cloudWatchAPI
}

// NewExplorer builds the gateway from the credential store's derived config.
// Fails fast with a ConfigurationError when no credentials exist.
func NewExplorer(ctx context.Context, store *credentials.Store) (*Explorer, error) {
	cfg, err := store.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Explorer{
		ce: costexplorer.NewFromConfig(cfg),
		cw: cloudwatch.NewFromConfig(cfg),
	}, nil
}

// GetCostAndUsage returns daily (or monthly) blended cost per service for
// the given period.
func (e *Explorer) GetCostAndUsage(
	ctx context.Context,
	start, end time.Time,
	granularity domain.Granularity,
) ([]domain.CostRecord, error) {
	logger := zerolog.Ctx(ctx)

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &cetypes.DateInterval{
			Start: awssdk.String(start.Format(dateLayout)),
			End:   awssdk.String(end.Format(dateLayout)),
		},
		Granularity: cetypes.Granularity(granularity),
		Metrics:     []string{"BlendedCost", "UnblendedCost", "UsageQuantity"},
		GroupBy: []cetypes.GroupDefinition{
			{
				Type: cetypes.GroupDefinitionTypeDimension,
				Key:  awssdk.String("SERVICE"),
			},
		},
	}

	result, err := e.ce.GetCostAndUsage(ctx, input)
	if err != nil {
		logger.Warn().Err(err).Msg("cost explorer query failed")
		return nil, &domain.TransientFetchError{Op: "cost explorer query", Err: err}
	}

	var records []domain.CostRecord
	for _, byTime := range result.ResultsByTime {
		date := start
		if byTime.TimePeriod != nil && byTime.TimePeriod.Start != nil {
			if parsed, err := time.Parse(dateLayout, *byTime.TimePeriod.Start); err == nil {
				date = parsed
			}
		}

		for _, group := range byTime.Groups {
			service := "Unknown"
			if len(group.Keys) > 0 {
				service = group.Keys[0]
			}

			amount, currency := blendedCost(group.Metrics)
			records = append(records, domain.CostRecord{
				Date:     date,
				Amount:   amount,
				Currency: currency,
				Service:  service,
			})
		}
	}

	return records, nil
}

// GetUtilizationMetrics returns statistics datapoints for one metric,
// ordered by timestamp.
func (e *Explorer) GetUtilizationMetrics(
	ctx context.Context,
	namespace, metricName string,
	start, end time.Time,
	periodSeconds int32,
) ([]domain.UsageSample, error) {
	logger := zerolog.Ctx(ctx)

	input := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  awssdk.String(namespace),
		MetricName: awssdk.String(metricName),
		StartTime:  awssdk.Time(start),
		EndTime:    awssdk.Time(end),
		Period:     awssdk.Int32(periodSeconds),
		Statistics: []cwtypes.Statistic{
			cwtypes.StatisticAverage,
			cwtypes.StatisticMaximum,
			cwtypes.StatisticSum,
		},
	}

	result, err := e.cw.GetMetricStatistics(ctx, input)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("namespace", namespace).
			Str("metric", metricName).
			Msg("cloudwatch query failed")
		return nil, &domain.TransientFetchError{Op: "cloudwatch query", Err: err}
	}

	samples := make([]domain.UsageSample, 0, len(result.Datapoints))
	for _, dp := range result.Datapoints {
		sample := domain.UsageSample{
			Service: namespace,
			Metric:  metricName,
			Value:   datapointValue(dp),
			Unit:    string(dp.Unit),
		}
		if dp.Timestamp != nil {
			sample.Timestamp = *dp.Timestamp
		}
		samples = append(samples, sample)
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	return samples, nil
}

// GetEC2Utilization fetches hourly CPU utilization over the last 30 days.
func (e *Explorer) GetEC2Utilization(ctx context.Context) ([]domain.UsageSample, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)
	return e.GetUtilizationMetrics(ctx, "AWS/EC2", "CPUUtilization", start, end, 3600)
}

func blendedCost(metrics map[string]cetypes.MetricValue) (float64, string) {
	currency := "USD"
	metric, ok := metrics["BlendedCost"]
	if !ok {
		return 0, currency
	}

	var amount float64
	if metric.Amount != nil {
		amount, _ = strconv.ParseFloat(*metric.Amount, 64)
	}
	if metric.Unit != nil && *metric.Unit != "" {
		currency = *metric.Unit
	}
	return amount, currency
}

func datapointValue(dp cwtypes.Datapoint) float64 {
	switch {
	case dp.Average != nil:
		return *dp.Average
	case dp.Sum != nil:
		return *dp.Sum
	case dp.Maximum != nil:
		return *dp.Maximum
	default:
		return 0
	}
}
