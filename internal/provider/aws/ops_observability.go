package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/privsweep/privsweep/internal/scan"
)

func cloudwatchOps(cfg awssdk.Config) opSet {
	c := cloudwatch.NewFromConfig(cfg)
	return opSet{
		"list_metrics": op("ListMetrics", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListMetrics(ctx, &cloudwatch.ListMetricsInput{})
		}),
		"list_dashboards": op("ListDashboards", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListDashboards(ctx, &cloudwatch.ListDashboardsInput{})
		}),
		"describe_alarms": op("DescribeAlarms", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeAlarms(ctx, &cloudwatch.DescribeAlarmsInput{})
		}),
		"describe_anomaly_detectors": op("DescribeAnomalyDetectors", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeAnomalyDetectors(ctx, &cloudwatch.DescribeAnomalyDetectorsInput{})
		}),
	}
}

func logsOps(cfg awssdk.Config) opSet {
	c := cloudwatchlogs.NewFromConfig(cfg)
	return opSet{
		"describe_log_groups": op("DescribeLogGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{})
		}),
		"describe_metric_filters": op("DescribeMetricFilters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeMetricFilters(ctx, &cloudwatchlogs.DescribeMetricFiltersInput{})
		}),
		"describe_export_tasks": op("DescribeExportTasks", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeExportTasks(ctx, &cloudwatchlogs.DescribeExportTasksInput{})
		}),
		"describe_log_streams": op("DescribeLogStreams", func(ctx context.Context, args scan.Args) (any, error) {
			group, err := args.String("LogGroupName")
			if err != nil {
				return nil, err
			}
			return c.DescribeLogStreams(ctx, &cloudwatchlogs.DescribeLogStreamsInput{
				LogGroupName: awssdk.String(group),
			})
		}),
	}
}
