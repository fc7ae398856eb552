package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/privsweep/privsweep/internal/scan"
)

func s3Ops(cfg awssdk.Config) opSet {
	c := s3.NewFromConfig(cfg)
	return opSet{
		"list_buckets": op("ListBuckets", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListBuckets(ctx, &s3.ListBucketsInput{})
		}),
		"get_bucket_acl": op("GetBucketAcl", func(ctx context.Context, args scan.Args) (any, error) {
			bucket, err := args.String("Bucket")
			if err != nil {
				return nil, err
			}
			return c.GetBucketAcl(ctx, &s3.GetBucketAclInput{Bucket: awssdk.String(bucket)})
		}),
		"get_bucket_location": op("GetBucketLocation", func(ctx context.Context, args scan.Args) (any, error) {
			bucket, err := args.String("Bucket")
			if err != nil {
				return nil, err
			}
			return c.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: awssdk.String(bucket)})
		}),
		"get_bucket_versioning": op("GetBucketVersioning", func(ctx context.Context, args scan.Args) (any, error) {
			bucket, err := args.String("Bucket")
			if err != nil {
				return nil, err
			}
			return c.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{Bucket: awssdk.String(bucket)})
		}),
		"get_bucket_tagging": op("GetBucketTagging", func(ctx context.Context, args scan.Args) (any, error) {
			bucket, err := args.String("Bucket")
			if err != nil {
				return nil, err
			}
			return c.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: awssdk.String(bucket)})
		}),
		"get_public_access_block": op("GetPublicAccessBlock", func(ctx context.Context, args scan.Args) (any, error) {
			bucket, err := args.String("Bucket")
			if err != nil {
				return nil, err
			}
			return c.GetPublicAccessBlock(ctx, &s3.GetPublicAccessBlockInput{Bucket: awssdk.String(bucket)})
		}),
		"list_objects_v2": op("ListObjectsV2", func(ctx context.Context, args scan.Args) (any, error) {
			bucket, err := args.String("Bucket")
			if err != nil {
				return nil, err
			}
			return c.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
				Bucket:  awssdk.String(bucket),
				MaxKeys: awssdk.Int32(1),
			})
		}),
	}
}

func dynamodbOps(cfg awssdk.Config) opSet {
	c := dynamodb.NewFromConfig(cfg)
	return opSet{
		"list_tables": op("ListTables", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListTables(ctx, &dynamodb.ListTablesInput{})
		}),
		"describe_limits": op("DescribeLimits", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeLimits(ctx, &dynamodb.DescribeLimitsInput{})
		}),
		"list_backups": op("ListBackups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.ListBackups(ctx, &dynamodb.ListBackupsInput{})
		}),
		"describe_table": op("DescribeTable", func(ctx context.Context, args scan.Args) (any, error) {
			table, err := args.String("TableName")
			if err != nil {
				return nil, err
			}
			return c.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: awssdk.String(table)})
		}),
	}
}

func rdsOps(cfg awssdk.Config) opSet {
	c := rds.NewFromConfig(cfg)
	return opSet{
		"describe_db_instances": op("DescribeDBInstances", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
		}),
		"describe_db_clusters": op("DescribeDBClusters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{})
		}),
		"describe_db_snapshots": op("DescribeDBSnapshots", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeDBSnapshots(ctx, &rds.DescribeDBSnapshotsInput{})
		}),
		"describe_db_parameter_groups": op("DescribeDBParameterGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeDBParameterGroups(ctx, &rds.DescribeDBParameterGroupsInput{})
		}),
		"describe_event_subscriptions": op("DescribeEventSubscriptions", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeEventSubscriptions(ctx, &rds.DescribeEventSubscriptionsInput{})
		}),
	}
}

func elasticacheOps(cfg awssdk.Config) opSet {
	c := elasticache.NewFromConfig(cfg)
	return opSet{
		"describe_cache_clusters": op("DescribeCacheClusters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeCacheClusters(ctx, &elasticache.DescribeCacheClustersInput{})
		}),
		"describe_replication_groups": op("DescribeReplicationGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeReplicationGroups(ctx, &elasticache.DescribeReplicationGroupsInput{})
		}),
		"describe_cache_subnet_groups": op("DescribeCacheSubnetGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeCacheSubnetGroups(ctx, &elasticache.DescribeCacheSubnetGroupsInput{})
		}),
		"describe_snapshots": op("DescribeSnapshots", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeSnapshots(ctx, &elasticache.DescribeSnapshotsInput{})
		}),
	}
}

func redshiftOps(cfg awssdk.Config) opSet {
	c := redshift.NewFromConfig(cfg)
	return opSet{
		"describe_clusters": op("DescribeClusters", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeClusters(ctx, &redshift.DescribeClustersInput{})
		}),
		"describe_cluster_snapshots": op("DescribeClusterSnapshots", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeClusterSnapshots(ctx, &redshift.DescribeClusterSnapshotsInput{})
		}),
		"describe_cluster_subnet_groups": op("DescribeClusterSubnetGroups", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeClusterSubnetGroups(ctx, &redshift.DescribeClusterSubnetGroupsInput{})
		}),
		"describe_events": op("DescribeEvents", func(ctx context.Context, _ scan.Args) (any, error) {
			return c.DescribeEvents(ctx, &redshift.DescribeEventsInput{})
		}),
	}
}
