package advisor

import "github.com/de-tools/cost-compass/pkg/models/domain"

// fallbackCatalog is the curated recommendation set used whenever the
// reasoning service is unconfigured, unreachable, or returns garbage.
// Content and figures are fixed so the dashboard stays deterministic in
// degraded mode.
func fallbackCatalog() []domain.Recommendation {
	return []domain.Recommendation{
		{
			ID:          "general_ec2_rightsizing",
			Type:        domain.RecommendationCostReduction,
			Title:       "Right-size EC2 Instances",
			Description: "Analyze your EC2 instances for CPU and memory utilization. Many instances run at less than 20% utilization and can be downsized. Use AWS Compute Optimizer to identify right-sizing opportunities.",
			Impact:      domain.ImpactHigh,
			Category:    "compute",
			Service:     "Amazon EC2",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 500, Currency: "USD", Percentage: 20,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyEasy,
				TimeToImplement: "1-2 weeks",
				Steps: []string{
					"Enable AWS Compute Optimizer",
					"Review CPU and memory utilization metrics",
					"Identify underutilized instances",
					"Test workloads on smaller instance types",
					"Implement changes during maintenance windows",
				},
			},
			Tags:      []string{"ec2", "rightsizing", "compute"},
			Priority:  9,
			IsGeneral: true,
		},
		{
			ID:          "general_reserved_instances",
			Type:        domain.RecommendationCostReduction,
			Title:       "Purchase Reserved Instances",
			Description: "For stable, predictable workloads running 24/7, Reserved Instances can provide up to 75% savings compared to On-Demand pricing. Start with 1-year terms for flexibility.",
			Impact:      domain.ImpactHigh,
			Category:    "compute",
			Service:     "Amazon EC2",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 800, Currency: "USD", Percentage: 40,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyMedium,
				TimeToImplement: "2-4 weeks",
				Steps: []string{
					"Analyze usage patterns for the last 12 months",
					"Identify consistently running instances",
					"Calculate potential savings",
					"Purchase Reserved Instances for stable workloads",
					"Monitor utilization and coverage",
				},
			},
			Tags:      []string{"reserved-instances", "ec2", "commitment"},
			Priority:  8,
			IsGeneral: true,
		},
		{
			ID:          "general_s3_storage_classes",
			Type:        domain.RecommendationCostReduction,
			Title:       "Optimize S3 Storage Classes",
			Description: "Use S3 Intelligent-Tiering or lifecycle policies to automatically move objects to cheaper storage classes (IA, Glacier) based on access patterns. This can reduce storage costs by 40-60%.",
			Impact:      domain.ImpactMedium,
			Category:    "storage",
			Service:     "Amazon S3",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 300, Currency: "USD", Percentage: 50,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyEasy,
				TimeToImplement: "1 week",
				Steps: []string{
					"Enable S3 Storage Analytics",
					"Analyze access patterns for your buckets",
					"Configure S3 Intelligent-Tiering",
					"Set up lifecycle policies",
					"Monitor cost changes",
				},
			},
			Tags:      []string{"s3", "storage", "lifecycle"},
			Priority:  7,
			IsGeneral: true,
		},
		{
			ID:          "general_unused_resources",
			Type:        domain.RecommendationCostReduction,
			Title:       "Identify and Remove Unused Resources",
			Description: "Regularly audit for unused EBS volumes, Elastic IPs, load balancers, and NAT gateways. These resources incur charges even when not actively used.",
			Impact:      domain.ImpactMedium,
			Category:    "compute",
			Service:     "Various",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 200, Currency: "USD", Percentage: 10,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyEasy,
				TimeToImplement: "3-5 days",
				Steps: []string{
					"Use AWS Config to identify unused resources",
					"Check for unattached EBS volumes",
					"Review unused Elastic IP addresses",
					"Identify idle load balancers",
					"Set up automated cleanup policies",
				},
			},
			Tags:      []string{"cleanup", "unused-resources", "audit"},
			Priority:  6,
			IsGeneral: true,
		},
		{
			ID:          "general_spot_instances",
			Type:        domain.RecommendationCostReduction,
			Title:       "Use Spot Instances for Fault-Tolerant Workloads",
			Description: "For batch processing, data analysis, and development environments, Spot Instances can provide up to 90% savings. Use Auto Scaling groups with mixed instance types.",
			Impact:      domain.ImpactHigh,
			Category:    "compute",
			Service:     "Amazon EC2",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 600, Currency: "USD", Percentage: 70,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyMedium,
				TimeToImplement: "2-3 weeks",
				Steps: []string{
					"Identify fault-tolerant workloads",
					"Design applications for interruption handling",
					"Configure Auto Scaling with Spot Fleet",
					"Test spot interruption scenarios",
					"Monitor savings and availability",
				},
			},
			Tags:      []string{"spot-instances", "ec2", "interruption-tolerant"},
			Priority:  7,
			IsGeneral: true,
		},
		{
			ID:          "general_cloudwatch_logs",
			Type:        domain.RecommendationCostReduction,
			Title:       "Optimize CloudWatch Logs Retention",
			Description: "Set appropriate log retention periods and use CloudWatch Logs Insights instead of storing all logs indefinitely. Consider archiving old logs to S3.",
			Impact:      domain.ImpactLow,
			Category:    "other",
			Service:     "Amazon CloudWatch",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 100, Currency: "USD", Percentage: 30,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyEasy,
				TimeToImplement: "2-3 days",
				Steps: []string{
					"Review current log retention settings",
					"Set retention periods based on compliance needs",
					"Archive old logs to S3",
					"Use log filtering to reduce ingestion",
					"Monitor log storage costs",
				},
			},
			Tags:      []string{"cloudwatch", "logs", "retention"},
			Priority:  4,
			IsGeneral: true,
		},
		{
			ID:          "general_rds_optimization",
			Type:        domain.RecommendationCostReduction,
			Title:       "Optimize RDS Instances and Storage",
			Description: "Right-size RDS instances, use gp3 storage, enable automated backups optimization, and consider Aurora Serverless for variable workloads.",
			Impact:      domain.ImpactMedium,
			Category:    "database",
			Service:     "Amazon RDS",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 400, Currency: "USD", Percentage: 25,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyMedium,
				TimeToImplement: "1-2 weeks",
				Steps: []string{
					"Analyze RDS performance metrics",
					"Right-size instances based on CPU/Memory usage",
					"Migrate to gp3 storage",
					"Optimize backup retention",
					"Consider Aurora Serverless for dev/test",
				},
			},
			Tags:      []string{"rds", "database", "aurora"},
			Priority:  6,
			IsGeneral: true,
		},
		{
			ID:          "general_data_transfer",
			Type:        domain.RecommendationCostReduction,
			Title:       "Minimize Data Transfer Costs",
			Description: "Use CloudFront for content delivery, optimize inter-region data transfer, and consider VPC endpoints for AWS service communications to reduce NAT gateway costs.",
			Impact:      domain.ImpactMedium,
			Category:    "network",
			Service:     "Various",
			EstimatedSavings: domain.EstimatedSavings{
				Amount: 250, Currency: "USD", Percentage: 40,
			},
			Implementation: domain.Implementation{
				Difficulty:      domain.DifficultyMedium,
				TimeToImplement: "2-4 weeks",
				Steps: []string{
					"Analyze data transfer patterns",
					"Set up CloudFront distributions",
					"Configure VPC endpoints",
					"Optimize cross-region replication",
					"Monitor network costs",
				},
			},
			Tags:      []string{"data-transfer", "cloudfront", "vpc-endpoints"},
			Priority:  5,
			IsGeneral: true,
		},
	}
}
